package theme

// Icon carries the same symbol for both front ends.
type Icon struct {
	// SVG is inline markup for the web toggle button.
	SVG string
	// Glyph is a single-cell stand-in for the terminal header.
	Glyph string
}

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`

var icons = map[Setting]Icon{
	Light: {
		SVG:   svgOpen + `<circle cx="12" cy="12" r="5"/><path d="M12 1v2M12 21v2M4.22 4.22l1.42 1.42M18.36 18.36l1.42 1.42M1 12h2M21 12h2M4.22 19.78l1.42-1.42M18.36 5.64l1.42-1.42"/></svg>`,
		Glyph: "☀",
	},
	Dark: {
		SVG:   svgOpen + `<path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"></path></svg>`,
		Glyph: "☾",
	},
	System: {
		SVG:   svgOpen + `<rect x="2" y="3" width="20" height="14" rx="2" ry="2"></rect><line x1="8" y1="21" x2="16" y2="21"></line><line x1="12" y1="17" x2="12" y2="21"></line></svg>`,
		Glyph: "◐",
	},
}

// IconFor returns the toggle icon for a setting.
func IconFor(s Setting) Icon {
	if ic, ok := icons[s]; ok {
		return ic
	}
	return icons[System]
}
