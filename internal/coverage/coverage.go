// Package coverage tallies how many example files each language has per
// top-level feature and summarizes the counts as discrete tiers.
package coverage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/icysun/semgrep/internal/resolve"
	"github.com/icysun/semgrep/internal/taxonomy"
)

// Tier is a discrete coverage level for one feature/language cell.
type Tier int

const (
	TierMissing Tier = iota
	TierPartial
	TierComplete
)

// TierFor maps a file count to its tier. Five or more examples count as
// complete.
func TierFor(count int) Tier {
	switch {
	case count == 0:
		return TierMissing
	case count < 5:
		return TierPartial
	default:
		return TierComplete
	}
}

// Marker returns the visual marker rendered for the tier.
func (t Tier) Marker() string {
	switch t {
	case TierMissing:
		return "\U0001F6A7"
	case TierPartial:
		return "\U0001F536"
	default:
		return "✅"
	}
}

// Stats counts the example files under root/langDir per feature: a file
// counts toward a feature when its name carries the feature prefix and the
// language's mapped extension. A missing directory yields all zeros.
func Stats(root, langDir string) map[string]int {
	counts := make(map[string]int, len(taxonomy.Features))
	for _, f := range taxonomy.Features {
		counts[f] = 0
	}
	entries, err := os.ReadDir(filepath.Join(root, langDir))
	if err != nil {
		return counts
	}
	ext := "." + taxonomy.Ext(langDir)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		for _, f := range taxonomy.Features {
			if strings.HasPrefix(e.Name(), f) {
				counts[f]++
			}
		}
	}
	return counts
}

// Matrix holds per-language stats, languages in directory-listing order.
type Matrix struct {
	Languages []string
	Counts    map[string]map[string]int // language -> feature -> count
}

// BuildMatrix computes Stats for every language directory under root.
func BuildMatrix(root string) (*Matrix, error) {
	langs, err := resolve.LanguageDirs(root)
	if err != nil {
		return nil, err
	}
	m := &Matrix{Languages: langs, Counts: make(map[string]map[string]int, len(langs))}
	for _, lang := range langs {
		m.Counts[lang] = Stats(root, lang)
	}
	return m, nil
}
