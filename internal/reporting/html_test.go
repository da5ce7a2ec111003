package reporting_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icysun/semgrep/internal/cheatsheet"
	"github.com/icysun/semgrep/internal/matcher"
	"github.com/icysun/semgrep/internal/reporting"
)

func renderHTML(t *testing.T, doc *cheatsheet.Document) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, reporting.WriteHTML(&buf, doc))
	return buf.String()
}

func entry(pattern, patternPath, code, codePath string) cheatsheet.Example {
	e := cheatsheet.Example{
		PatternPath: patternPath,
		CodePath:    codePath,
		Highlights:  []matcher.Highlight{},
	}
	if pattern != "" {
		e.Pattern = strptr(pattern)
	}
	if code != "" {
		e.Code = strptr(code)
	}
	return e
}

func TestWriteHTML_GroupsIdenticalPatterns(t *testing.T) {
	doc := cheatsheet.NewDocument()
	doc.Add("python", "Wildcard Matches (...)", "Arguments",
		entry("foo(...)\n", "python/dots_args.sgrep", "foo(1)\n", "python/dots_args.py"))
	doc.Add("python", "Wildcard Matches (...)", "Arguments",
		entry("foo(...)\n", "python/dots_args.sgrep", "foo(1, 2)\n", "python/dots_args2.py"))

	out := renderHTML(t, doc)
	assert.Equal(t, 1, strings.Count(out, `class="pattern"`),
		"entries sharing (pattern, path) render a single pattern block")
	assert.Equal(t, 2, strings.Count(out, `class="match"`))
}

func TestWriteHTML_PlaceholderWhenNoSnippet(t *testing.T) {
	doc := cheatsheet.NewDocument()
	doc.Add("ruby", "Wildcard Matches (...)", "Arguments",
		entry("foo(...)\n", "ruby/dots_args.sgrep", "", "ruby/dots_args.rb"))

	out := renderHTML(t, doc)
	assert.Contains(t, out, `class="notimplemented"`)
	assert.Contains(t, out, "ruby/dots_args.sgrep")
	assert.NotContains(t, out, `class="pattern"`)
	assert.NotContains(t, out, `class="match"`)
}

func TestWriteHTML_EmptyPatternRendersNothing(t *testing.T) {
	doc := cheatsheet.NewDocument()
	doc.Add("ruby", "Wildcard Matches (...)", "Arguments",
		entry("", "POLYGLOT/dots_args.sgrep", "", "POLYGLOT/dots_args.rb"))

	out := renderHTML(t, doc)
	assert.NotContains(t, out, "<div class=pair>")
	assert.NotContains(t, out, `class="notimplemented"`)
	// The section scaffolding is still present.
	assert.Contains(t, out, "<h2>ruby</h2>")
	assert.Contains(t, out, "<h3>Arguments</h3>")
}

func TestWriteHTML_EscapesSnippetText(t *testing.T) {
	doc := cheatsheet.NewDocument()
	doc.Add("python", "Exact Matches", "Single Statements",
		entry("<script>\n", "python/concrete_syntax.sgrep", "a < b\n", "python/concrete_syntax.py"))

	out := renderHTML(t, doc)
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "a &lt; b")
	assert.NotContains(t, out, "<script>")
}
