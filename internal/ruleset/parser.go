package ruleset

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hackerESQ/privado-core/internal/model"
	"github.com/hackerESQ/privado-core/internal/taxonomy"
)

// minSinkDepth is the minimum category-path length a sink document needs:
// segment 1 = top-level category, 2 = sub-category, 3 = node type,
// last = declared language.
const minSinkDepth = 4

// ParseDocument decodes one rule document and stamps every retained entry
// with taxonomy metadata derived from the document's location under root.
// On failure it returns the empty bundle and an error; the caller logs
// the diagnostic and keeps walking, so one broken document never aborts a
// root. The second return value counts entries dropped by validation.
func ParseDocument(root, path string, content []byte) (model.RuleBundle, int, error) {
	var doc model.RuleBundle
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return model.RuleBundle{}, 0, fmt.Errorf("decode: %w", err)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return model.RuleBundle{}, 0, fmt.Errorf("relativize %s: %w", path, err)
	}
	catPath, lang := taxonomy.Derive(rel)

	// Sink taxonomy reads segments 2 and 3; a shallower path would be an
	// out-of-bounds classification, so the document is rejected whole.
	if len(doc.Sinks) > 0 && len(catPath) < minSinkDepth {
		return model.RuleBundle{}, 0, fmt.Errorf(
			"sink document requires at least %d path segments, got %d", minSinkDepth, len(catPath))
	}

	catOne := taxonomy.CatUnknown
	if len(catPath) > 0 {
		catOne = taxonomy.ParseCatLevelOne(catPath[0])
	}

	var out model.RuleBundle
	dropped := 0

	for _, e := range doc.Sources {
		if !IsValidRule(e.FirstPattern(), e.Id) {
			dropped++
			continue
		}
		e.File = path
		e.CategoryPath = catPath
		e.CatLevelOne = catOne
		e.NodeType = taxonomy.NodeRegular
		e.Language = lang
		out.Sources = append(out.Sources, e)
	}

	for _, e := range doc.Sinks {
		if !IsValidRule(e.FirstPattern(), e.Id) {
			dropped++
			continue
		}
		e.File = path
		e.CategoryPath = catPath
		e.CatLevelOne = catOne
		e.CatLevelTwo = catPath[1]
		e.NodeType = taxonomy.ParseNodeType(catPath[2])
		e.Language = lang
		out.Sinks = append(out.Sinks, e)
	}

	for _, e := range doc.Collections {
		if !IsValidRule(e.FirstPattern(), e.Id) {
			dropped++
			continue
		}
		e.File = path
		e.CategoryPath = catPath
		e.CatLevelOne = catOne
		e.NodeType = taxonomy.NodeRegular
		// Collections carry no declared language.
		e.Language = taxonomy.LangUnknown
		out.Collections = append(out.Collections, e)
	}

	for _, e := range doc.Exclusions {
		e.File = path
		e.CategoryPath = catPath
		e.CatLevelOne = catOne
		e.NodeType = taxonomy.NodeRegular
		e.Language = lang
		out.Exclusions = append(out.Exclusions, e)
	}

	for _, p := range doc.Policies {
		p.File = path
		p.CategoryPath = catPath
		out.Policies = append(out.Policies, p)
	}

	for _, p := range doc.Threats {
		p.File = path
		p.CategoryPath = catPath
		out.Threats = append(out.Threats, p)
	}

	for _, s := range doc.Semantics {
		s.File = path
		s.CategoryPath = catPath
		s.Language = lang
		out.Semantics = append(out.Semantics, s)
	}

	return out, dropped, nil
}
