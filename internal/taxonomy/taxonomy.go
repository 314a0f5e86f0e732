package taxonomy

import (
	"path/filepath"
	"strings"
)

// CatLevelOne is the top-level rule category, derived from the first
// segment of a document's category path.
type CatLevelOne string

const (
	CatSources     CatLevelOne = "SOURCES"
	CatSinks       CatLevelOne = "SINKS"
	CatCollections CatLevelOne = "COLLECTIONS"
	CatPolicies    CatLevelOne = "POLICIES"
	CatThreats     CatLevelOne = "THREATS"
	CatExclusions  CatLevelOne = "EXCLUSIONS"
	CatSemantics   CatLevelOne = "SEMANTICS"
	CatUnknown     CatLevelOne = "UNKNOWN"
)

// NodeType classifies sink entries, derived from the third segment of a
// sink document's category path.
type NodeType string

const (
	NodeRegular NodeType = "REGULAR"
	NodeAPI     NodeType = "API"
)

// Language is the implementation language a rule document declares via
// its final category-path segment.
type Language string

const (
	LangJava       Language = "JAVA"
	LangKotlin     Language = "KOTLIN"
	LangPython     Language = "PYTHON"
	LangJavascript Language = "JAVASCRIPT"
	LangGo         Language = "GO"
	LangRuby       Language = "RUBY"
	LangPHP        Language = "PHP"
	LangCSharp     Language = "CSHARP"
	LangUnknown    Language = "UNKNOWN"
)

// ParseCatLevelOne maps a path segment to its category. Unrecognized
// segments map to CatUnknown; the parse never fails.
func ParseCatLevelOne(segment string) CatLevelOne {
	switch CatLevelOne(strings.ToUpper(segment)) {
	case CatSources:
		return CatSources
	case CatSinks:
		return CatSinks
	case CatCollections:
		return CatCollections
	case CatPolicies:
		return CatPolicies
	case CatThreats:
		return CatThreats
	case CatExclusions:
		return CatExclusions
	case CatSemantics:
		return CatSemantics
	default:
		return CatUnknown
	}
}

// ParseNodeType maps a path segment to a sink node type. Everything that
// is not an API sink is a regular node.
func ParseNodeType(segment string) NodeType {
	if strings.EqualFold(segment, string(NodeAPI)) {
		return NodeAPI
	}
	return NodeRegular
}

// ParseLanguage maps a path segment to a declared language, defaulting to
// LangUnknown on no exact (case-insensitive) match.
func ParseLanguage(segment string) Language {
	switch Language(strings.ToUpper(segment)) {
	case LangJava:
		return LangJava
	case LangKotlin:
		return LangKotlin
	case LangPython:
		return LangPython
	case LangJavascript:
		return LangJavascript
	case LangGo:
		return LangGo
	case LangRuby:
		return LangRuby
	case LangPHP:
		return LangPHP
	case LangCSharp:
		return LangCSharp
	default:
		return LangUnknown
	}
}

// Derive computes the category path and declared language for a rule
// document at relPath (relative to its rules root). The category path is
// the path split on the separator with the file extension stripped from
// the last segment. Derive is total: any input yields a valid result.
func Derive(relPath string) ([]string, Language) {
	trimmed := strings.TrimSuffix(relPath, filepath.Ext(relPath))
	segments := strings.Split(filepath.ToSlash(trimmed), "/")
	return segments, ParseLanguage(segments[len(segments)-1])
}
