package ruleset

import "testing"

func TestIsValidRule(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		id      string
		want    bool
	}{
		{"valid rule", "(?i)account", "Data.Sensitive.Account", true},
		{"plain literal pattern", "email", "Data.Sensitive.Email", true},
		{"empty pattern", "", "Data.Sensitive.Account", false},
		{"empty id", "(?i)account", "", false},
		{"both empty", "", "", false},
		{"unbalanced paren", "(", "Data.Sensitive.Account", false},
		{"bad char class", "[z-a]", "Data.Sensitive.Account", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidRule(tt.pattern, tt.id); got != tt.want {
				t.Errorf("IsValidRule(%q, %q) = %v, want %v", tt.pattern, tt.id, got, tt.want)
			}
		})
	}
}
