package merge

import (
	"slices"

	"github.com/hackerESQ/privado-core/internal/model"
)

// Aggregate folds per-document bundles into one bundle by ordered
// concatenation per category. It is total over an empty document list,
// yielding the all-empty bundle.
func Aggregate(docs []model.RuleBundle) model.RuleBundle {
	var out model.RuleBundle
	for _, d := range docs {
		out.Sources = append(out.Sources, d.Sources...)
		out.Sinks = append(out.Sinks, d.Sinks...)
		out.Collections = append(out.Collections, d.Collections...)
		out.Policies = append(out.Policies, d.Policies...)
		out.Threats = append(out.Threats, d.Threats...)
		out.Exclusions = append(out.Exclusions, d.Exclusions...)
		out.Semantics = append(out.Semantics, d.Semantics...)
	}
	return out
}

// Merge combines the built-in and user-supplied bundles into the final
// catalogue bundle. Each category is concatenated external-before-internal
// and deduplicated keeping the first occurrence, so a user rule that
// reuses a built-in identifier overrides the built-in rule. Semantics are
// keyed by signature; all other categories by identifier. An empty
// internal bundle is the identity, never an error.
func Merge(internal, external model.RuleBundle) model.RuleBundle {
	entryID := func(e model.RuleEntry) string { return e.Id }
	policyID := func(p model.PolicyOrThreat) string { return p.Id }
	signature := func(s model.Semantic) string { return s.Signature }

	return model.RuleBundle{
		Sources:     dedupFirst(external.Sources, internal.Sources, entryID),
		Sinks:       dedupFirst(external.Sinks, internal.Sinks, entryID),
		Collections: dedupFirst(external.Collections, internal.Collections, entryID),
		Policies:    dedupFirst(external.Policies, internal.Policies, policyID),
		Threats:     dedupFirst(external.Threats, internal.Threats, policyID),
		Exclusions:  dedupFirst(external.Exclusions, internal.Exclusions, entryID),
		Semantics:   dedupFirst(external.Semantics, internal.Semantics, signature),
	}
}

// dedupFirst concatenates first ++ second and removes later occurrences of
// a key, preserving order. The first-occurrence-wins rule is what gives
// the external bundle precedence in Merge.
func dedupFirst[T any](first, second []T, key func(T) string) []T {
	all := slices.Concat(first, second)
	if len(all) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(all))
	out := make([]T, 0, len(all))
	for _, item := range all {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}
