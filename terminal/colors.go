package terminal

import "github.com/gdamore/tcell/v2"

// Palette for the terminal views
var (
	RgbBackground = tcell.NewRGBColor(16, 16, 24)
	RgbTitle      = tcell.NewRGBColor(255, 200, 80)
	RgbText       = tcell.NewRGBColor(200, 200, 200)
	RgbDim        = tcell.NewRGBColor(110, 110, 110)
	RgbQuestion   = tcell.NewRGBColor(120, 200, 255)
	RgbMonster    = tcell.NewRGBColor(140, 230, 140)
	RgbCookie     = tcell.NewRGBColor(210, 150, 70)
	RgbScore      = tcell.NewRGBColor(255, 230, 120)
	RgbLives      = tcell.NewRGBColor(240, 100, 100)
	RgbTimer      = tcell.NewRGBColor(170, 170, 255)
	RgbCorrect    = tcell.NewRGBColor(100, 230, 100)
	RgbIncorrect  = tcell.NewRGBColor(230, 90, 90)
)
