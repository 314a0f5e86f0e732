package ruleset

import "regexp"

// IsValidRule reports whether a source/sink/collection entry may enter
// the catalogue: the identifying pattern must be non-empty and compile,
// and the identifier must be non-empty. Invalid entries are dropped
// before aggregation so they never reach the catalogue.
func IsValidRule(pattern, id string) bool {
	if pattern == "" || id == "" {
		return false
	}
	_, err := regexp.Compile(pattern)
	return err == nil
}
