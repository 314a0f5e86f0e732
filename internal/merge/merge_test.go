package merge

import (
	"reflect"
	"testing"

	"github.com/hackerESQ/privado-core/internal/model"
)

func entry(id, name string) model.RuleEntry {
	return model.RuleEntry{Id: id, Name: name, Patterns: []string{"(?i)" + name}}
}

func policy(id, name string) model.PolicyOrThreat {
	return model.PolicyOrThreat{Id: id, Name: name}
}

func TestAggregate(t *testing.T) {
	docs := []model.RuleBundle{
		{Sources: []model.RuleEntry{entry("S.A", "a")}},
		{Sources: []model.RuleEntry{entry("S.B", "b")}, Policies: []model.PolicyOrThreat{policy("P.1", "one")}},
		{Semantics: []model.Semantic{{Signature: "sig.a"}}},
	}

	got := Aggregate(docs)
	if len(got.Sources) != 2 || got.Sources[0].Id != "S.A" || got.Sources[1].Id != "S.B" {
		t.Errorf("sources not concatenated in order: %+v", got.Sources)
	}
	if len(got.Policies) != 1 || len(got.Semantics) != 1 {
		t.Errorf("categories missing: %d policies, %d semantics", len(got.Policies), len(got.Semantics))
	}
}

func TestAggregate_EmptyList(t *testing.T) {
	got := Aggregate(nil)
	if !got.IsEmpty() {
		t.Errorf("Aggregate(nil) should be the empty bundle, got %d entries", got.Total())
	}
}

func TestMerge_ExternalWins(t *testing.T) {
	internal := model.RuleBundle{
		Sources: []model.RuleEntry{
			{Id: "Data.Sensitive.Account", Name: "Built-in Account", Patterns: []string{"(?i)account"}},
		},
	}
	external := model.RuleBundle{
		Sources: []model.RuleEntry{
			{Id: "Data.Sensitive.Account", Name: "Custom Account", Patterns: []string{"(?i)(account|acct)"}},
		},
	}

	got := Merge(internal, external)
	if len(got.Sources) != 1 {
		t.Fatalf("expected 1 source after dedup, got %d", len(got.Sources))
	}
	if got.Sources[0].Name != "Custom Account" {
		t.Errorf("merged entry = %q, want the external entry to win", got.Sources[0].Name)
	}
}

func TestMerge_IdentityLaws(t *testing.T) {
	bundle := model.RuleBundle{
		Sources:  []model.RuleEntry{entry("S.A", "a"), entry("S.B", "b")},
		Policies: []model.PolicyOrThreat{policy("P.1", "one")},
	}
	var empty model.RuleBundle

	left := Merge(empty, bundle)
	if !reflect.DeepEqual(left.Sources, bundle.Sources) || !reflect.DeepEqual(left.Policies, bundle.Policies) {
		t.Errorf("Merge(empty, bundle) should equal dedup(bundle): %+v", left)
	}
	right := Merge(bundle, empty)
	if !reflect.DeepEqual(left, right) {
		t.Errorf("identity laws violated: Merge(empty, b) != Merge(b, empty)\nleft:  %+v\nright: %+v", left, right)
	}
}

func TestMerge_DistinctIdentifiers(t *testing.T) {
	internal := model.RuleBundle{
		Sinks: []model.RuleEntry{entry("K.A", "a"), entry("K.B", "b")},
		Threats: []model.PolicyOrThreat{
			policy("T.1", "one"), policy("T.2", "two"),
		},
	}
	external := model.RuleBundle{
		Sinks:   []model.RuleEntry{entry("K.B", "b2"), entry("K.C", "c")},
		Threats: []model.PolicyOrThreat{policy("T.2", "two-custom")},
	}

	got := Merge(internal, external)

	seenSinks := map[string]int{}
	for _, e := range got.Sinks {
		seenSinks[e.Id]++
	}
	for id, n := range seenSinks {
		if n != 1 {
			t.Errorf("sink id %q appears %d times", id, n)
		}
	}
	if len(got.Sinks) != 3 {
		t.Errorf("expected 3 sinks, got %d", len(got.Sinks))
	}

	if len(got.Threats) != 2 {
		t.Errorf("expected 2 threats, got %d", len(got.Threats))
	}
	for _, thr := range got.Threats {
		if thr.Id == "T.2" && thr.Name != "two-custom" {
			t.Errorf("threat T.2 = %q, want external override", thr.Name)
		}
	}
}

func TestMerge_SemanticsKeyedBySignature(t *testing.T) {
	internal := model.RuleBundle{
		Semantics: []model.Semantic{
			{Signature: "org.slf4j.Logger.debug", Flow: "builtin"},
			{Signature: "java.util.Map.put", Flow: "builtin"},
		},
	}
	external := model.RuleBundle{
		Semantics: []model.Semantic{
			{Signature: "org.slf4j.Logger.debug", Flow: "custom"},
		},
	}

	got := Merge(internal, external)
	if len(got.Semantics) != 2 {
		t.Fatalf("expected 2 semantics, got %d", len(got.Semantics))
	}
	for _, s := range got.Semantics {
		if s.Signature == "org.slf4j.Logger.debug" && s.Flow != "custom" {
			t.Errorf("semantic %q flow = %q, want external override", s.Signature, s.Flow)
		}
	}
}

func TestMerge_PreservesOrder(t *testing.T) {
	internal := model.RuleBundle{
		Sources: []model.RuleEntry{entry("S.3", "c"), entry("S.4", "d")},
	}
	external := model.RuleBundle{
		Sources: []model.RuleEntry{entry("S.1", "a"), entry("S.2", "b")},
	}

	got := Merge(internal, external)
	want := []string{"S.1", "S.2", "S.3", "S.4"}
	var ids []string
	for _, e := range got.Sources {
		ids = append(ids, e.Id)
	}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("merge order = %v, want external-before-internal %v", ids, want)
	}
}
