// Package ui renders build summaries, messages and errors for the CLI.
// It supports terminal (styled), text (plain), and JSON output formats.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/woah/pkg/errors"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderSummary renders the outcome of a build
	RenderSummary(s Summary) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto inspects output when it is a file and falls back to text.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return newTerminalRenderer(output), nil
	case FormatText:
		return &textRenderer{output: output}, nil
	case FormatJSON:
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return &jsonRenderer{encoder: encoder}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

type row struct {
	label string
	value string
}

func summaryRows(s Summary) []row {
	generators := strings.Join(s.Generators, ", ")
	if generators == "" {
		generators = "none"
	}
	return []row{
		{"output", s.Output},
		{"generators", generators},
		{"items", fmt.Sprintf("%d (%d textures)", s.Items, s.ItemTextures)},
		{"blocks", fmt.Sprintf("%d (%d textures)", s.Blocks, s.BlockTextures)},
		{"identity", s.Identity},
		{"duration", s.Duration.Round(time.Millisecond).String()},
	}
}

func summaryTitle(s Summary) string {
	if s.Addon == "" {
		return "Built addon"
	}
	return fmt.Sprintf("Built %s", s.Addon)
}

type textRenderer struct {
	output io.Writer
}

func (r *textRenderer) RenderSummary(s Summary) error {
	var b strings.Builder
	b.WriteString(summaryTitle(s))
	b.WriteString("\n")
	for _, row := range summaryRows(s) {
		fmt.Fprintf(&b, "  %-11s %s\n", row.label, row.value)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

type jsonRenderer struct {
	encoder *json.Encoder
}

func (r *jsonRenderer) RenderSummary(s Summary) error {
	return r.encoder.Encode(s)
}

func (r *jsonRenderer) RenderError(err error) error {
	obj := map[string]interface{}{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
		"kind":  errors.KindOf(err).String(),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return r.encoder.Encode(obj)
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
