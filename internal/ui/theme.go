package ui

import (
	"image/color"

	"golang.org/x/image/colornames"
)

type Theme struct {
	Background color.RGBA
}

func DefaultTheme() Theme {
	return Theme{
		Background: colornames.Black,
	}
}
