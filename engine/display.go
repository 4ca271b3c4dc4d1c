package engine

import (
	"fmt"
	"io"
	"othello/game"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer formats boards for the command protocol. Every line starts with '#'
// so the output stays parseable; colour is only added on colour terminals.
type Renderer struct {
	plain bool
	black lipgloss.Style
	white lipgloss.Style
	empty lipgloss.Style
}

// NewRenderer picks the colour profile of w. plain forces uncoloured output.
func NewRenderer(w io.Writer, plain bool) *Renderer {
	profile := termenv.NewOutput(w).Profile
	if plain || profile == termenv.Ascii {
		return &Renderer{plain: true}
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Renderer{
		black: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#E4572E")),
		white: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F3F3F3")),
		empty: r.NewStyle().Faint(true),
	}
}

func (r *Renderer) cell(c game.Cell) string {
	if r.plain {
		return c.String()
	}
	switch c {
	case game.BlackCounter:
		return r.black.Render(c.String())
	case game.WhiteCounter:
		return r.white.Render(c.String())
	}
	return r.empty.Render(c.String())
}

// Board renders the score line followed by one line per row.
func (r *Renderer) Board(b *game.Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#\n# Score=%d", b.Score())
	for row := 0; row < b.Size(); row++ {
		sb.WriteString("\n#")
		for col := 0; col < b.Size(); col++ {
			sb.WriteByte(' ')
			sb.WriteString(r.cell(b.At(row, col)))
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Final renders the counter totals of both players.
func (r *Renderer) Final(b *game.Board) string {
	black, white := b.Counts()
	return fmt.Sprintf("# The final score is:\n# The 'B' player: %d\n# The 'W' player: %d\n", black, white)
}
