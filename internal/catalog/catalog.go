package catalog

import (
	"errors"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/hackerESQ/privado-core/internal/model"
)

// ErrAlreadySet is returned when Set is called a second time on the same
// catalog.
var ErrAlreadySet = errors.New("rule catalog already populated")

// Catalog is the run-wide rule store. It is a single-assignment resource:
// Set installs the merged bundle exactly once at startup, after which all
// reads are lock-free and safe for concurrent use.
type Catalog struct {
	mu  sync.Mutex
	set bool

	bundle   model.RuleBundle
	rules    *gocache.Cache // id -> model.RuleEntry
	policies *gocache.Cache // id -> model.PolicyOrThreat

	internalPolicyIDs map[string]struct{}
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		rules:             gocache.New(gocache.NoExpiration, 0),
		policies:          gocache.New(gocache.NoExpiration, 0),
		internalPolicyIDs: make(map[string]struct{}),
	}
}

// Set installs the merged bundle and records which policy/threat
// identifiers originated from the built-in bundle. A second call fails
// with ErrAlreadySet.
func (c *Catalog) Set(bundle model.RuleBundle, internalPolicyIDs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set {
		return ErrAlreadySet
	}

	c.bundle = bundle
	for _, category := range [][]model.RuleEntry{
		bundle.Sources, bundle.Sinks, bundle.Collections, bundle.Exclusions,
	} {
		for _, e := range category {
			c.rules.Set(e.Id, e, gocache.NoExpiration)
		}
	}
	for _, p := range bundle.Policies {
		c.policies.Set(p.Id, p, gocache.NoExpiration)
	}
	for _, p := range bundle.Threats {
		c.policies.Set(p.Id, p, gocache.NoExpiration)
	}
	for _, id := range internalPolicyIDs {
		c.internalPolicyIDs[id] = struct{}{}
	}

	c.set = true
	return nil
}

// Rule looks up a source/sink/collection/exclusion entry by identifier.
func (c *Catalog) Rule(id string) (model.RuleEntry, bool) {
	v, ok := c.rules.Get(id)
	if !ok {
		return model.RuleEntry{}, false
	}
	return v.(model.RuleEntry), true
}

// PolicyOrThreat looks up a policy or threat by identifier.
func (c *Catalog) PolicyOrThreat(id string) (model.PolicyOrThreat, bool) {
	v, ok := c.policies.Get(id)
	if !ok {
		return model.PolicyOrThreat{}, false
	}
	return v.(model.PolicyOrThreat), true
}

// IsInternalPolicy reports whether the policy/threat identifier came from
// the built-in bundle, distinguishing built-in from user-authored
// policies downstream.
func (c *Catalog) IsInternalPolicy(id string) bool {
	_, ok := c.internalPolicyIDs[id]
	return ok
}

// Bundle returns the merged bundle.
func (c *Catalog) Bundle() model.RuleBundle {
	return c.bundle
}
