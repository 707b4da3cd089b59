package render

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/woah/pkg/errors"
)

// Format pretty-prints rendered JSON with a two-space indent and a trailing
// newline. Text that is not valid JSON means a template is miswired.
func Format(text string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return "", errors.Wrap(err, errors.ErrTemplate, "rendered text is not valid JSON").
			WithDetail("text", text)
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}
