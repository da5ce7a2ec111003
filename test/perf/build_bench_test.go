package perf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/icysun/semgrep/internal/cheatsheet"
	"github.com/icysun/semgrep/internal/matcher"
	"github.com/icysun/semgrep/internal/taxonomy"
)

// BenchmarkBuild_ThreeLanguages exercises the full resolution/aggregation
// loop with a stubbed matcher, so the numbers reflect the aggregator itself
// rather than subprocess startup.
func BenchmarkBuild_ThreeLanguages(b *testing.B) {
	root := b.TempDir()
	for _, lang := range []string{"go", "python", "ruby"} {
		dir := filepath.Join(root, lang)
		if err := os.Mkdir(dir, 0o755); err != nil {
			b.Fatal(err)
		}
		for _, cat := range taxonomy.CheatsheetEntries {
			for _, sub := range cat.Subcategories {
				base := cat.Key + "_" + sub
				if err := os.WriteFile(filepath.Join(dir, base+".sgrep"), []byte("foo(...)\n"), 0o644); err != nil {
					b.Fatal(err)
				}
				if err := os.WriteFile(filepath.Join(dir, base+"."+taxonomy.Ext(lang)), []byte("foo(1)\n"), 0o644); err != nil {
					b.Fatal(err)
				}
			}
		}
	}

	match := func(lang, patternPath, codePath string) ([]matcher.Highlight, error) {
		return []matcher.Highlight{{
			Start: matcher.Position{Line: 1, Col: 1},
			End:   matcher.Position{Line: 1, Col: 5},
		}}, nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc, err := cheatsheet.Build(root, match)
		if err != nil {
			b.Fatal(err)
		}
		if doc.Len() != 3 {
			b.Fatal("unexpected language count")
		}
	}
}
