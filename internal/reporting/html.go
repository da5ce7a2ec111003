package reporting

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/icysun/semgrep/internal/cheatsheet"
)

const styleSheet = `
.pattern {
    background-color: #0974d7;
    color: white;
    padding: 10px;
}

.match {
    background-color: white;
    padding: 10px;
    border: 1px solid #0974d7;
    color: black;
}

.pair {
    display: flex;
    width: 100%;
    font-family: Consolas, Bitstream Vera Sans Mono, Courier New, Courier, monospace;
    font-size: 1em;
}

.example {
    padding: 10px;
    margin: 10px;
    border: 1px solid #ccc;
}

.examples {
    display: flex;
}

a {
    text-decoration: none;
    color: inherit;
}

pre {
    margin: 0;
}

.example-category {
    width: fit-content;
    border-top: 1px solid #ddd;
}

.notimplemented {
    background-color: yellow;
}

h3 {
    margin: 0;
    margin-bottom: 10px;
}
`

// patternGroup collects every code snippet demonstrated against one
// (pattern text, pattern path) pair, so the pattern renders as a single
// block even when several entries share it.
type patternGroup struct {
	pattern string
	path    string
	code    []snippet
}

type snippet struct {
	text string
	path string
}

// WriteHTML renders the document as a standalone HTML page, one section per
// language. Combinations with no pattern text render nothing; a pattern
// with no non-empty code snippet renders a visible placeholder naming the
// expected file.
func WriteHTML(w io.Writer, doc *cheatsheet.Document) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<head><style>%s</style></head><body>", styleSheet)
	for _, lang := range doc.Keys() {
		features, _ := doc.Get(lang)
		fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(lang))
		for _, feature := range features.Keys() {
			subs, _ := features.Get(feature)
			var examples strings.Builder
			for _, sub := range subs.Keys() {
				entries, _ := subs.Get(sub)
				var pairs strings.Builder
				for _, g := range groupByPattern(entries) {
					block := groupHTML(g)
					if block == "" {
						continue
					}
					fmt.Fprintf(&pairs, "<div class=pair>%s</div>", block)
				}
				fmt.Fprintf(&examples, `<div class="example"><h3>%s</h3>%s</div>`,
					html.EscapeString(sub), pairs.String())
			}
			fmt.Fprintf(&b, `<div class="example-category"><h2>%s</h2><div class="examples">%s</div></div>`,
				html.EscapeString(feature), examples.String())
		}
	}
	b.WriteString("</body>")
	_, err := io.WriteString(w, b.String())
	return err
}

// groupByPattern buckets entries sharing identical (pattern, pattern path),
// preserving first-seen order.
func groupByPattern(entries []cheatsheet.Example) []*patternGroup {
	var groups []*patternGroup
	index := map[[2]string]*patternGroup{}
	for _, e := range entries {
		key := [2]string{deref(e.Pattern), e.PatternPath}
		g, ok := index[key]
		if !ok {
			g = &patternGroup{pattern: key[0], path: key[1]}
			index[key] = g
			groups = append(groups, g)
		}
		g.code = append(g.code, snippet{text: deref(e.Code), path: e.CodePath})
	}
	return groups
}

// groupHTML renders one pattern block with its snippets. An empty pattern
// yields nothing; a pattern without any non-empty snippet yields the
// "missing example" placeholder instead of snippet blocks.
func groupHTML(g *patternGroup) string {
	if g.pattern == "" {
		return ""
	}
	var matched []snippet
	for _, s := range g.code {
		if s.text != "" {
			matched = append(matched, s)
		}
	}
	if len(matched) == 0 {
		return fmt.Sprintf(
			`<div class="notimplemented">This is missing an example!<br/>Or it doesn't work yet for this language!<br/>Edit %s</div>`,
			html.EscapeString(g.path))
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="pattern"><a href="%s"><pre>%s</pre></a></div>`,
		html.EscapeString(g.path), html.EscapeString(g.pattern))
	b.WriteString("<div>")
	for _, s := range matched {
		fmt.Fprintf(&b, `<div class="match"><a href="%s"><pre>%s</pre></a></div>`,
			html.EscapeString(s.path), html.EscapeString(s.text))
	}
	b.WriteString("</div>")
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
