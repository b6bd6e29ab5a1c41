package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/secplus/internal/ui/theme"
)

const bannerArt = `
 ███████╗███████╗ ██████╗    ██╗
 ██╔════╝██╔════╝██╔════╝    ██║
 ███████╗█████╗  ██║      ████████╗
 ╚════██║██╔══╝  ██║      ╚══██╔══╝
 ███████║███████╗╚██████╗    ██║
 ╚══════╝╚══════╝ ╚═════╝    ╚═╝`

const bannerCompact = "S E C U R I T Y +"

// renderBanner returns the banner in the primary color, falling back to
// the compact form in narrow or short terminals.
func renderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact || width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
