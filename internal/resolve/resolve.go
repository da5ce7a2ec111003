// Package resolve locates example and pattern files for a language/feature
// pair, with a generic fallback directory shared by all languages.
package resolve

import (
	"os"
	"path/filepath"

	"github.com/icysun/semgrep/internal/taxonomy"
)

// Find returns the best path for the given feature pair. A language-specific
// file wins; otherwise the path under the fallback directory is returned
// unconditionally — callers check existence at use time.
func Find(root, lang, category, subcategory, ext string) string {
	name := category + "_" + subcategory + "." + ext
	p := filepath.Join(root, lang, name)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return filepath.Join(root, taxonomy.FallbackDir, name)
}

// LanguageDirs lists the language directories under root, in directory-listing
// order, skipping reserved non-language names.
func LanguageDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var langs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if !taxonomy.LanguageDir(e.Name()) {
			continue
		}
		langs = append(langs, e.Name())
	}
	return langs, nil
}
