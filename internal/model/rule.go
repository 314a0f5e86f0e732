package model

import "github.com/hackerESQ/privado-core/internal/taxonomy"

// RuleEntry is one source, sink, collection or exclusion rule. The yaml
// fields come from the document; the remaining fields are stamped during
// parsing from the document's location under its rules root.
type RuleEntry struct {
	Id          string            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	Patterns    []string          `yaml:"patterns" json:"patterns"`
	Domains     []string          `yaml:"domains,omitempty" json:"domains,omitempty"`
	IsSensitive bool              `yaml:"isSensitive,omitempty" json:"isSensitive,omitempty"`
	Sensitivity string            `yaml:"sensitivity,omitempty" json:"sensitivity,omitempty"`
	Tags        map[string]string `yaml:"tags,omitempty" json:"tags,omitempty"`

	File         string               `yaml:"-" json:"file"`
	CategoryPath []string             `yaml:"-" json:"categoryPath"`
	CatLevelOne  taxonomy.CatLevelOne `yaml:"-" json:"catLevelOne"`
	CatLevelTwo  string               `yaml:"-" json:"catLevelTwo,omitempty"`
	NodeType     taxonomy.NodeType    `yaml:"-" json:"nodeType"`
	Language     taxonomy.Language    `yaml:"-" json:"language"`
}

// FirstPattern returns the entry's identifying pattern, the one that must
// compile for the entry to be valid.
func (e RuleEntry) FirstPattern() string {
	if len(e.Patterns) == 0 {
		return ""
	}
	return e.Patterns[0]
}

// PolicyOrThreat describes a policy or threat definition. Policies and
// threats share one shape and carry no per-entry language tag.
type PolicyOrThreat struct {
	Id          string            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Fix         string            `yaml:"fix,omitempty" json:"fix,omitempty"`
	Action      string            `yaml:"action,omitempty" json:"action,omitempty"`
	Tags        map[string]string `yaml:"tags,omitempty" json:"tags,omitempty"`

	File         string   `yaml:"-" json:"file"`
	CategoryPath []string `yaml:"-" json:"categoryPath"`
}

// Semantic is a dataflow semantic annotation. Semantics are keyed by
// signature rather than by identifier.
type Semantic struct {
	Signature string `yaml:"signature" json:"signature"`
	Flow      string `yaml:"flow,omitempty" json:"flow,omitempty"`

	File         string            `yaml:"-" json:"file"`
	CategoryPath []string          `yaml:"-" json:"categoryPath"`
	Language     taxonomy.Language `yaml:"-" json:"language"`
}

// RuleBundle holds the seven rule categories. A single parsed document is
// a bundle scoped to one file; folding all documents under a root yields
// a per-root bundle; merging the internal and external roots yields the
// final catalogue bundle. The zero value is the identity element under
// concatenation.
type RuleBundle struct {
	Sources     []RuleEntry      `yaml:"sources" json:"sources"`
	Sinks       []RuleEntry      `yaml:"sinks" json:"sinks"`
	Collections []RuleEntry      `yaml:"collections" json:"collections"`
	Policies    []PolicyOrThreat `yaml:"policies" json:"policies"`
	Threats     []PolicyOrThreat `yaml:"threats" json:"threats"`
	Exclusions  []RuleEntry      `yaml:"exclusions" json:"exclusions"`
	Semantics   []Semantic       `yaml:"semantics" json:"semantics"`
}

// Total counts retained entries across all categories.
func (b RuleBundle) Total() int {
	return len(b.Sources) + len(b.Sinks) + len(b.Collections) +
		len(b.Policies) + len(b.Threats) + len(b.Exclusions) + len(b.Semantics)
}

// IsEmpty reports whether the bundle holds no entries at all.
func (b RuleBundle) IsEmpty() bool {
	return b.Total() == 0
}
