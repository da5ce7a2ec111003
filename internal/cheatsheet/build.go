package cheatsheet

import (
	"os"
	"path/filepath"

	"github.com/icysun/semgrep/internal/matcher"
	"github.com/icysun/semgrep/internal/resolve"
	"github.com/icysun/semgrep/internal/taxonomy"
)

// MatchFunc runs the external matcher for one pattern/code pair.
type MatchFunc func(language, patternPath, codePath string) ([]matcher.Highlight, error)

// Build aggregates the cheatsheet for every language directory under root,
// one matcher invocation at a time. A matcher error aborts the whole build:
// the generated cheatsheet is either complete or clearly failed.
func Build(root string, match MatchFunc) (*Document, error) {
	langs, err := resolve.LanguageDirs(root)
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	for _, lang := range langs {
		for _, cat := range taxonomy.CheatsheetEntries {
			for _, sub := range cat.Subcategories {
				patternPath := resolve.Find(root, lang, cat.Key, sub, "sgrep")
				codePath := resolve.Find(root, lang, cat.Key, sub, taxonomy.Ext(lang))

				highlights := []matcher.Highlight{}
				if exists(patternPath) && exists(codePath) {
					ranges, err := match(lang, patternPath, codePath)
					if err != nil {
						return nil, err
					}
					highlights = append(highlights, ranges...)
				}

				feature := taxonomy.FeatureName(cat.Key)
				subName := taxonomy.SubcategoryName(sub)
				if cat.Key == "regexp" && sub == "string" {
					subName = taxonomy.RegexpSyntaxCaption
				}
				if taxonomy.Excluded(lang, feature, sub) {
					continue
				}

				doc.Add(lang, feature, subName, Example{
					Pattern:     readIfExists(patternPath),
					PatternPath: relTo(root, patternPath),
					Code:        readIfExists(codePath),
					CodePath:    relTo(root, codePath),
					Highlights:  highlights,
				})
			}
		}
	}
	return doc, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readIfExists returns the file's text, or nil when it does not exist.
func readIfExists(path string) *string {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

func relTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
