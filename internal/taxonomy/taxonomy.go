// Package taxonomy holds the fixed tables describing which pattern-matching
// features are documented, how they are labeled for humans, and which
// feature/language combinations are known not to apply.
package taxonomy

// Features tracked by the coverage matrix, in display order.
var Features = []string{"dots", "equivalence", "metavar", "misc"}

// RegexpSyntaxCaption replaces the generic "Strings" label for the
// (regexp, string) pair.
const RegexpSyntaxCaption = `OCaml Syntax: "=~/<regexp>/"`

// FallbackDir is the language-agnostic example directory consulted when no
// language-specific file exists.
const FallbackDir = "POLYGLOT"

var featureNames = map[string]string{
	"dots":             "Wildcard Matches (...)",
	"equivalence":      "Helpful Features",
	"metavar":          "Named Placeholders ($X)",
	"misc":             "Others",
	"metavar_equality": "Reoccurring Expressions",
	"concrete":         "Exact Matches",
	"regexp":           "Regular Expressions",
	"deep":             "Deep (Recursive) Matching",
}

var subcategoryNames = map[string]string{
	"stmt":                 "Statement",
	"stmts":                "Statements",
	"call":                 "Function Call",
	"eq":                   "Equality Constraints",
	"nested_stmts":         "Nested Statements",
	"cond":                 "Conditionals",
	"arg":                  "Argument",
	"args":                 "Arguments",
	"import":               "Imports",
	"string":               "Strings",
	"expr":                 "Expressions",
	"var":                  "Variables",
	"naming_import":        "Import Renaming/Aliasing",
	"constant_propagation": "Constant Propagation",
	"fieldname":            "Field Names",
	"syntax":               "Single Statements",
	"exprstmt":             "Expression and Statement",
}

// languageExceptions lists feature/subcategory keys that do not apply to a
// language (no such construct, or the matcher does not support it there).
var languageExceptions = map[string][]string{
	"java":   {"naming_import"},
	"c":      {"naming_import"},
	"ruby":   {"naming_import", "typed"},
	"python": {"typed"},
	"js":     {"typed"},
}

// excludedDirs are reserved directory names under the example root that do
// not represent languages.
var excludedDirs = map[string]bool{
	"TODO":     true,
	"POLYGLOT": true,
	"e2e":      true,
	"OTHER":    true,
}

// Category is one documented feature with the language constructs it is
// demonstrated against.
type Category struct {
	Key           string
	Subcategories []string
}

// CheatsheetEntries enumerates the documented (category, subcategory) pairs
// in render order.
var CheatsheetEntries = []Category{
	{Key: "concrete", Subcategories: []string{"syntax"}},
	{Key: "dots", Subcategories: []string{"args", "string", "stmts", "nested_stmts"}},
	{Key: "metavar", Subcategories: []string{"call", "arg", "stmt", "cond", "import", "typed"}},
	{Key: "regexp", Subcategories: []string{"string"}},
	{Key: "metavar_equality", Subcategories: []string{"expr", "stmt", "var"}},
	{Key: "equivalence", Subcategories: []string{"naming_import", "constant_propagation"}},
}

var langExt = map[string]string{
	"python": "py",
	"ruby":   "rb",
}

// Ext maps a language directory name to its source file extension. Most
// directories are named after the extension itself.
func Ext(langDir string) string {
	if e, ok := langExt[langDir]; ok {
		return e
	}
	return langDir
}

// FeatureName returns the human-readable label for a category key, falling
// back to the key itself.
func FeatureName(category string) string {
	if n, ok := featureNames[category]; ok {
		return n
	}
	return category
}

// SubcategoryName returns the human-readable label for a subcategory key,
// falling back to the key itself.
func SubcategoryName(sub string) string {
	if n, ok := subcategoryNames[sub]; ok {
		return n
	}
	return sub
}

// Excluded reports whether the given feature does not apply to lang. The
// exception list is matched against both the display name and the raw
// subcategory key.
func Excluded(lang, featureName, subcategory string) bool {
	for _, x := range languageExceptions[lang] {
		if x == featureName || x == subcategory {
			return true
		}
	}
	return false
}

// LanguageDir reports whether a directory name under the example root is a
// real language directory.
func LanguageDir(name string) bool {
	return !excludedDirs[name]
}
