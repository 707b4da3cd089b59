package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	colorError   = lipgloss.AdaptiveColor{Light: "#D7261E", Dark: "#FF5F57"}
)

// Styles holds the lipgloss styles of the terminal renderer.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Created lipgloss.Style
	Error   lipgloss.Style
	Message lipgloss.Style
}

// NewStyles builds the styles for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		Label:   r.NewStyle().Foreground(colorMuted).Width(11).MarginLeft(2),
		Value:   r.NewStyle(),
		Created: r.NewStyle().Bold(true).Foreground(colorSuccess),
		Error:   r.NewStyle().Bold(true).Foreground(colorError),
		Message: r.NewStyle().Foreground(colorAccent),
	}
}

type terminalRenderer struct {
	output io.Writer
	styles Styles
}

// The lipgloss renderer probes output itself, so a non-terminal writer
// still gets plain text.
func newTerminalRenderer(output io.Writer) *terminalRenderer {
	return &terminalRenderer{
		output: output,
		styles: NewStyles(lipgloss.NewRenderer(output)),
	}
}

func (r *terminalRenderer) RenderSummary(s Summary) error {
	lines := []string{r.styles.Title.Render(summaryTitle(s))}
	for _, row := range summaryRows(s) {
		value := r.styles.Value.Render(row.value)
		if row.label == "identity" && s.Identity == IdentityCreated {
			value = r.styles.Created.Render(row.value)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			r.styles.Label.Render(row.label), " ", value))
	}
	_, err := fmt.Fprintln(r.output, strings.Join(lines, "\n"))
	return err
}

func (r *terminalRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.styles.Error.Render(fmt.Sprintf("Error: %v", err)))
	return werr
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.styles.Message.Render(msg))
	return err
}
