package theme

// Palette and ttk style setup for the labeler window.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // toolbar background
	ColorSurface   = "#ffffff"
	ColorCanvas    = "#333333" // behind the image
	ColorPrimary   = "#2563eb"
	ColorAccent    = "#10b981"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// Style names used with Style(...).
const (
	StylePrimaryButton = "primary.TButton"
	StyleNavButton     = "nav.TButton"
	StyleCounterLabel  = "counter.TLabel"
)

// InitStyles activates the base theme and configures the semantic styles.
func InitStyles() {
	_ = ActivateTheme("azure light")
	App.Configure(Background(ColorBg))

	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleNavButton,
		Padding("4p 3p"),
		Borderwidth(1),
	)
	StyleConfigure(StyleCounterLabel,
		Foreground(ColorTextMuted),
		Background(ColorBg),
		Padding("4p 2p"),
	)
}
