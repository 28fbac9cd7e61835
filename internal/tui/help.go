package tui

import (
	"fmt"
	"strings"

	"charm.land/glamour/v2"
	"github.com/blinxlabs/zaps/internal/flows"
)

// helpMarkdown builds the help page: key bindings plus the step list of
// every flow, with gated and terminal steps marked.
func helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Zaps help\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	b.WriteString("| ↑/↓ | Move selection |\n")
	b.WriteString("| enter | Continue or select |\n")
	b.WriteString("| esc | Back; leaves the flow on its first step |\n")
	b.WriteString("| tab | Next field |\n")
	b.WriteString("| ←/→ | Switch history filter |\n")
	b.WriteString("| ? | Toggle this help |\n")
	b.WriteString("| ctrl+c | Quit |\n\n")

	b.WriteString("## Flows\n\n")
	for _, f := range flows.Describe() {
		fmt.Fprintf(&b, "### %s\n\n", f.Title)
		for i, s := range f.Steps {
			marks := ""
			if s.Gated {
				marks += " *(needs input)*"
			}
			if s.Terminal {
				marks += " *(finishes)*"
			}
			fmt.Fprintf(&b, "%d. `%s`%s\n", i+1, s.ID, marks)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderMarkdown renders markdown with glamour.
// Falls back to the raw text if rendering fails.
func renderMarkdown(content string, width int) string {
	// Cap width to 100 for readability
	if width > 100 {
		width = 100
	}
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	// Remove trailing newline that glamour adds
	return strings.TrimSuffix(rendered, "\n")
}

// helpOverlay caches the rendered help page per width.
type helpOverlay struct {
	visible  bool
	width    int
	rendered string
}

func (h *helpOverlay) Toggle() {
	h.visible = !h.visible
}

func (h *helpOverlay) View(width int) string {
	if h.rendered == "" || h.width != width {
		h.width = width
		h.rendered = renderMarkdown(helpMarkdown(), width-4)
	}
	return h.rendered
}
