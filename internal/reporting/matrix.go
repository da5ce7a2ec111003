package reporting

import (
	"fmt"
	"html"
	"io"

	"github.com/icysun/semgrep/internal/coverage"
	"github.com/icysun/semgrep/internal/taxonomy"
)

// WriteMatrixHTML renders the feature-coverage table: one row per tracked
// feature, one column per language, each cell a tier marker.
func WriteMatrixHTML(w io.Writer, m *coverage.Matrix) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("<table style=\"text-align:center\">\n<tr>\n<td></td>\n")
	for _, lang := range m.Languages {
		p("<td><b>%s</b></td>\n", html.EscapeString(lang))
	}
	p("</tr>\n")

	for _, f := range taxonomy.Features {
		p("<tr>\n<td>%s</td>\n", html.EscapeString(taxonomy.FeatureName(f)))
		for _, lang := range m.Languages {
			p("<td>%s</td>\n", coverage.TierFor(m.Counts[lang][f]).Marker())
		}
		p("</tr>\n")
	}
	p("</table>\n")
	return err
}
