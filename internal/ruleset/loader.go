package ruleset

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/hackerESQ/privado-core/internal/merge"
	"github.com/hackerESQ/privado-core/internal/model"
)

// ParseError records one document that could not be ingested.
type ParseError struct {
	File string `json:"file"`
	Msg  string `json:"msg"`
}

// LoadResult is the outcome of ingesting one rules root.
type LoadResult struct {
	Bundle      model.RuleBundle
	ParseErrors []ParseError
	Dropped     int // entries removed by validation
}

// Loader ingests every rule document under a root into a single bundle.
type Loader struct {
	workers int
	logger  *log.Logger
}

// NewLoader creates a loader that parses up to workers documents
// concurrently.
func NewLoader(workers int, logger *log.Logger) *Loader {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{workers: workers, logger: logger}
}

// Load walks root, parses the discovered documents concurrently and folds
// the per-document bundles in path-sorted order. Results are addressed by
// discovery index, so the fold is independent of worker completion order.
// A root IO error is returned as-is; per-document failures are recovered
// into ParseErrors and the fold stays total.
func (l *Loader) Load(root string) (*LoadResult, error) {
	files, err := ListDocuments(root)
	if err != nil {
		return nil, err
	}

	type parsed struct {
		bundle  model.RuleBundle
		dropped int
		err     error
	}
	results := make([]parsed, len(files))

	sem := make(chan struct{}, l.workers)
	var wg sync.WaitGroup
	for i, path := range files {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			content, err := os.ReadFile(path)
			if err != nil {
				results[idx] = parsed{err: err}
				return
			}
			bundle, dropped, err := ParseDocument(root, path, content)
			results[idx] = parsed{bundle: bundle, dropped: dropped, err: err}
		}(i, path)
	}
	wg.Wait()

	res := &LoadResult{}
	docs := make([]model.RuleBundle, 0, len(files))
	for i, r := range results {
		if r.err != nil {
			l.logger.Warn("skipping rule document", "file", files[i], "err", r.err)
			res.ParseErrors = append(res.ParseErrors, ParseError{File: files[i], Msg: r.err.Error()})
			continue
		}
		res.Dropped += r.dropped
		docs = append(docs, r.bundle)
	}
	res.Bundle = merge.Aggregate(docs)

	return res, nil
}
