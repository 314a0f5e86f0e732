package pipeline

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/hackerESQ/privado-core/internal/catalog"
	"github.com/hackerESQ/privado-core/internal/merge"
	"github.com/hackerESQ/privado-core/internal/model"
	"github.com/hackerESQ/privado-core/internal/ruleset"
)

// Pipeline orchestrates rule ingestion: walk the internal and external
// roots, parse and validate their documents, merge with external
// precedence, and publish the catalog. Ingestion runs to completion
// before any consumer reads the catalog.
type Pipeline struct {
	loader *ruleset.Loader
	config *model.Config
	logger *log.Logger
}

// New creates a pipeline for the given configuration
func New(cfg *model.Config, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		loader: ruleset.NewLoader(cfg.Concurrency.ParseWorkers, logger),
		config: cfg,
		logger: logger,
	}
}

// Result is what ingestion hands to downstream consumers.
type Result struct {
	Catalog     *catalog.Catalog
	ParseErrors []ruleset.ParseError // user-facing list, surfaced at end of run
	Dropped     int                  // entries removed by validation
	Total       int                  // retained entries, reported to the metrics collector
}

// Load ingests both rule roots and builds the catalog. A root IO error is
// fatal and returned immediately; per-document failures accumulate in the
// result. The internal root may be skipped, in which case the internal
// bundle is the merge identity.
func (p *Pipeline) Load() (*Result, error) {
	res := &Result{}

	var internal model.RuleBundle
	if !p.config.Rules.SkipInternal && p.config.Rules.InternalDir != "" {
		loaded, err := p.loader.Load(p.config.Rules.InternalDir)
		if err != nil {
			return nil, fmt.Errorf("load internal rules: %w", err)
		}
		internal = loaded.Bundle
		res.ParseErrors = append(res.ParseErrors, loaded.ParseErrors...)
		res.Dropped += loaded.Dropped
	}

	var external model.RuleBundle
	if p.config.Rules.ExternalDir != "" {
		loaded, err := p.loader.Load(p.config.Rules.ExternalDir)
		if err != nil {
			return nil, fmt.Errorf("load external rules: %w", err)
		}
		external = loaded.Bundle
		res.ParseErrors = append(res.ParseErrors, loaded.ParseErrors...)
		res.Dropped += loaded.Dropped
	}

	merged := merge.Merge(internal, external)

	// Built-in policy/threat identifiers are recorded at merge time, not
	// re-derived later.
	internalPolicyIDs := make([]string, 0, len(internal.Policies)+len(internal.Threats))
	for _, pol := range internal.Policies {
		internalPolicyIDs = append(internalPolicyIDs, pol.Id)
	}
	for _, thr := range internal.Threats {
		internalPolicyIDs = append(internalPolicyIDs, thr.Id)
	}

	cat := catalog.New()
	if err := cat.Set(merged, internalPolicyIDs); err != nil {
		return nil, fmt.Errorf("publish catalog: %w", err)
	}

	res.Catalog = cat
	res.Total = merged.Total()

	p.logger.Debug("rule ingestion complete",
		"total", res.Total,
		"dropped", res.Dropped,
		"parse_errors", len(res.ParseErrors))

	return res, nil
}
