// File: pkg/digest/config.go
package digest

// OutputFile is the digest path, relative to the root directory.
const OutputFile = "_codebase_digest.txt"

// Header is written verbatim at the top of every digest.
const Header = "COLONY OS CODEBASE DIGEST (LEAN HIVE)\n" +
	"=====================================\n\n" +
	"Generated for Gemini 1.5 Pro Context Window Analysis\n" +
	"Contains ONLY core engine code (Marketplace & Gamification removed)\n\n"

// Rules holds the exclusion and inclusion sets applied during a run.
type Rules struct {
	IgnoreDirs  map[string]struct{} // Directory basenames pruned from traversal.
	IgnoreFiles map[string]struct{} // File basenames never included.
	IncludeExts map[string]struct{} // Extensions (with leading dot) eligible for inclusion.
}

// defaultRules is fixed at process start and never mutated.
var defaultRules = Rules{
	IgnoreDirs: setOf(
		"node_modules", ".git", ".next", "dist", "build", ".vscode", ".idea",
		"marketplace", "gamification",
		"public", "assets", "images",
		".expo", "__pycache__", "venv", ".venv", "env", "coverage", ".netlify",
		"web-build", ".pnp",
	),
	IgnoreFiles: setOf(
		"package-lock.json", "yarn.lock", "pnpm-lock.yaml",
		".DS_Store", ".env", ".env.local", ".env.production", ".env.development",
	),
	IncludeExts: setOf(
		".ts", ".tsx", ".js", ".jsx", ".json", ".py", ".md", ".css", ".prisma",
		".sql",
	),
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return defaultRules
}

// NewRules builds a rule set from plain lists.
func NewRules(ignoreDirs, ignoreFiles, includeExts []string) Rules {
	return Rules{
		IgnoreDirs:  setOf(ignoreDirs...),
		IgnoreFiles: setOf(ignoreFiles...),
		IncludeExts: setOf(includeExts...),
	}
}

func setOf(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
