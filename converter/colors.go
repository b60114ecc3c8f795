package converter

import (
	"github.com/foomo/notion-jarkup/jarkup"
	"github.com/foomo/notion-jarkup/notion"
)

// Text colours are looked up by exact match. Foreground names never resolve
// to a background colour and the other way around.
var (
	foregroundColors = map[notion.Color]string{
		notion.ColorBlue:   "#6987b8",
		notion.ColorBrown:  "#8b4c3f",
		notion.ColorGray:   "#868e9c",
		notion.ColorGreen:  "#59b57c",
		notion.ColorOrange: "#bf7e71",
		notion.ColorPink:   "#c9699e",
		notion.ColorPurple: "#9771bd",
		notion.ColorRed:    "#b36472",
		notion.ColorYellow: "#b8a36e",
	}
	backgroundColors = map[notion.Color]string{
		notion.ColorBlueBackground:   "#6987b8",
		notion.ColorBrownBackground:  "#8b4c3f",
		notion.ColorGrayBackground:   "#868e9c",
		notion.ColorGreenBackground:  "#59b57c",
		notion.ColorOrangeBackground: "#bf7e71",
		notion.ColorPinkBackground:   "#c9699e",
		notion.ColorPurpleBackground: "#9771bd",
		notion.ColorRedBackground:    "#b36472",
		notion.ColorYellowBackground: "#b8a36e",
	}
)

func calloutType(color notion.Color) jarkup.CalloutType {
	switch color.Base() {
	case notion.ColorGreen:
		return jarkup.CalloutTip
	case notion.ColorPurple:
		return jarkup.CalloutImportant
	case notion.ColorYellow, notion.ColorOrange, notion.ColorBrown:
		return jarkup.CalloutWarning
	case notion.ColorRed, notion.ColorPink:
		return jarkup.CalloutCaution
	default:
		return jarkup.CalloutNote
	}
}
