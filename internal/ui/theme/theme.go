package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a complete set of UI colors.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default palette.
var Dark = Palette{
	Primary:   lipgloss.Color("#3B82F6"), // Blue
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F59E0B"), // Amber
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"),
	TextDim:   lipgloss.Color("#94A3B8"),
	Bg:        lipgloss.Color("#0F172A"),
	BgCard:    lipgloss.Color("#1E293B"),
	Border:    lipgloss.Color("#334155"),
}

// Light is the light-background palette.
var Light = Palette{
	Primary:   lipgloss.Color("#2563EB"),
	Secondary: lipgloss.Color("#0D9488"),
	Accent:    lipgloss.Color("#B45309"),
	Success:   lipgloss.Color("#15803D"),
	Error:     lipgloss.Color("#BE123C"),
	Text:      lipgloss.Color("#0F172A"),
	TextDim:   lipgloss.Color("#475569"),
	Bg:        lipgloss.Color("#F8FAFC"),
	BgCard:    lipgloss.Color("#E2E8F0"),
	Border:    lipgloss.Color("#CBD5E1"),
}

// Density controls spacing inside cards.
type Density int

const (
	Cozy Density = iota
	Normal
	Large
)

// Current palette colors. Use replaces them.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
)

// Current density settings.
var (
	CardPadding  int // vertical padding inside the study card
	CardMinLines int // minimum body height of the study card
	LineGap      string
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Flagged    lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	Badge          lipgloss.Style
)

func init() {
	Use(Dark, Normal)
}

// Use switches the palette and density and rebuilds every style.
func Use(p Palette, d Density) {
	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	BgDark, BgCard, Border = p.Bg, p.BgCard, p.Border

	switch d {
	case Cozy:
		CardPadding, CardMinLines, LineGap = 0, 5, "\n"
	case Large:
		CardPadding, CardMinLines, LineGap = 2, 11, "\n\n\n"
	default:
		CardPadding, CardMinLines, LineGap = 1, 8, "\n\n"
	}

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(CardPadding, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Flagged = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	Badge = lipgloss.NewStyle().
		Foreground(p.Bg).
		Background(Secondary).
		Padding(0, 1)
}

// ForPrefs maps stored preference names to a palette and density.
func ForPrefs(theme, size string) (Palette, Density) {
	p := Dark
	if theme == "light" {
		p = Light
	}
	d := Normal
	switch size {
	case "cozy":
		d = Cozy
	case "large":
		d = Large
	}
	return p, d
}
