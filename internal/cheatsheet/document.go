// Package cheatsheet builds the aggregated cheatsheet document: language →
// feature → subcategory → example entries.
package cheatsheet

import "github.com/icysun/semgrep/internal/matcher"

// Example is one demonstrated pattern/code pair. Text fields are nil when
// the file does not exist, which is distinct from an empty file — absent
// files surface "not yet implemented" slots rather than errors.
type Example struct {
	Pattern     *string             `json:"pattern"`
	PatternPath string              `json:"pattern_path"`
	Code        *string             `json:"code"`
	CodePath    string              `json:"code_path"`
	Highlights  []matcher.Highlight `json:"highlights"`
}

// Document is the full aggregated cheatsheet, keyed by language.
type Document struct {
	OrderedMap[*FeatureMap]
}

// FeatureMap maps human-readable feature names to subcategory maps.
type FeatureMap struct {
	OrderedMap[*SubcategoryMap]
}

// SubcategoryMap maps human-readable subcategory names to example entries.
type SubcategoryMap struct {
	OrderedMap[[]Example]
}

func NewDocument() *Document {
	return &Document{}
}

// Add appends an example under (lang, feature, subcategory), creating the
// intermediate maps on first use.
func (d *Document) Add(lang, feature, subcategory string, e Example) {
	fm, ok := d.Get(lang)
	if !ok {
		fm = &FeatureMap{}
		d.Set(lang, fm)
	}
	sm, ok := fm.Get(feature)
	if !ok {
		sm = &SubcategoryMap{}
		fm.Set(feature, sm)
	}
	entries, _ := sm.Get(subcategory)
	sm.Set(subcategory, append(entries, e))
}
