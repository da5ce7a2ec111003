package reporting

import (
	"encoding/json"
	"io"

	"github.com/icysun/semgrep/internal/cheatsheet"
)

// WriteJSON renders the document as pretty-printed JSON. Key order follows
// the document's insertion order; absent pattern/code text serializes as
// null so "not attempted" stays distinguishable from an empty file.
func WriteJSON(w io.Writer, doc *cheatsheet.Document) error {
	b, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
