package connector

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"supplychain/internal/domain"
)

// TextRenderer prints connection states as status lines.
type TextRenderer struct {
	w        io.Writer
	errStyle lipgloss.Style
}

// NewTextRenderer renders to w. Colour is applied only when w is a terminal.
func NewTextRenderer(w io.Writer) *TextRenderer {
	r := lipgloss.NewRenderer(w)
	return &TextRenderer{w: w, errStyle: r.NewStyle().Foreground(lipgloss.Color("9"))}
}

// Render writes the line for state.
func (r *TextRenderer) Render(state domain.ConnectionState) {
	_, _ = fmt.Fprintln(r.w, r.line(state))
}

func (r *TextRenderer) line(state domain.ConnectionState) string {
	switch state.Status {
	case domain.Connected:
		return "✅ Connected Wallet: " + state.Address
	case domain.Failed:
		return r.errStyle.Render("❌ Error: " + state.Message())
	default:
		return "⏳ Connecting..."
	}
}
