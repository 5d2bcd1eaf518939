package swipeview

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor   tcell.Color // Main background color for primitives.
	ContrastBackgroundColor    tcell.Color // Background color for contrasting elements.
	DestructiveBackgroundColor tcell.Color // Background of actions that remove things.
	BorderColor                tcell.Color // Box borders.
	TitleColor                 tcell.Color // Box titles.
	PrimaryTextColor           tcell.Color // Primary text.
	SecondaryTextColor         tcell.Color // Secondary text (e.g. labels).
	InverseTextColor           tcell.Color // Text on primary-colored backgrounds.
	ContrastSecondaryTextColor tcell.Color // Secondary text on ContrastBackgroundColor-colored backgrounds.
}

// Styles defines the theme for applications. The default is for a black
// background and some basic colors.
var Styles = Theme{
	PrimitiveBackgroundColor:   color.Black,
	ContrastBackgroundColor:    color.Blue,
	DestructiveBackgroundColor: color.Red,
	BorderColor:                color.White,
	TitleColor:                 color.White,
	PrimaryTextColor:           color.White,
	SecondaryTextColor:         color.Yellow,
	InverseTextColor:           color.Blue,
	ContrastSecondaryTextColor: color.Navy,
}
