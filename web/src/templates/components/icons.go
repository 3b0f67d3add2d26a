package components

import (
	"html"

	g "maragu.dev/gomponents"
)

// Icon outlines, 24x24 stroke paths.
const (
	IconBarChart   = `<path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/>`
	IconTarget     = `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`
	IconTrendingUp = `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`
	IconUsers      = `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`
	IconLogOut     = `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/><polyline points="16 17 21 12 16 7"/><line x1="21" x2="9" y1="12" y2="12"/>`
	IconPlus       = `<path d="M5 12h14"/><path d="M12 5v14"/>`
)

// Icon renders one of the Icon* outlines with the given classes.
func Icon(paths, class string) g.Node {
	return g.Raw(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" class="` +
		html.EscapeString(class) + `">` + paths + `</svg>`)
}
