// Package ui holds the shared look of both surfaces: themed lipgloss
// styles, the framed panel, and the ok/fail status lines.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the palette and the checkbox glyphs. All rendering
// helpers pull from the current theme.
type Theme struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Pending  lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style
	Border   lipgloss.Style

	BoxChecked   string
	BoxUnchecked string
	SymDone      string
	SymPending   string
}

var current Theme

func init() { SetTheme("classic") }

// SetTheme installs a named theme; anything unknown falls back to
// classic. Call once at startup, before rendering.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:     lipgloss.NewStyle().Faint(true),
			Border: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("201")).
				Padding(0, 1),
			BoxChecked:   "◼",
			BoxUnchecked: "◻",
			SymDone:      "✔",
			SymPending:   "•",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		ascii := lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		}
		current = Theme{
			Title:        plain,
			Muted:        plain,
			Accent:       plain,
			Success:      plain,
			Error:        plain,
			Pending:      plain,
			Selected:     plain,
			Done:         plain,
			Help:         plain,
			Border:       lipgloss.NewStyle().Border(ascii).Padding(0, 1),
			BoxChecked:   "[x]",
			BoxUnchecked: "[ ]",
			SymDone:      "x",
			SymPending:   "-",
		}
	default: // classic
		current = Theme{
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:     lipgloss.NewStyle().Faint(true),
			Border: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(0, 1),
			BoxChecked:   "☑",
			BoxUnchecked: "☐",
			SymDone:      "✔",
			SymPending:   "•",
		}
	}
}

// Current exposes what the renderers need.
func Current() Theme { return current }
