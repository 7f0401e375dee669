package app

import (
	"fmt"

	"github.com/phillarmonic/figlet/figletlib"
)

// Domain: Version Display
// This file renders the version banner

// ShowVersion prints the banner followed by build metadata.
func ShowVersion(version, commit, date string) {
	printBanner()

	fmt.Println("lpsc - the LPS1 to C compiler")
	fmt.Println("Tiny language, honest C output.")
	fmt.Println()
	fmt.Println("By Phillarmonic Software <https://github.com/phillarmonic/lpsc>")
	fmt.Println()
	fmt.Printf("Version %s\n", version)
	if commit != "unknown" {
		fmt.Printf("commit: %s\n", commit)
	}
	if date != "unknown" {
		fmt.Printf("built: %s\n", date)
	}
}

// printBanner draws the figlet header. When the embedded font cannot be
// loaded the banner is skipped and the text output stays usable.
func printBanner() {
	font, err := figletlib.NewEmbededLoader().GetFontByName("standard")
	if err != nil {
		return
	}

	start, _ := figletlib.ParseColor("#FFB300")
	end, _ := figletlib.ParseColor("#FF3D6E")
	colors := figletlib.ColorConfig{
		Mode:       figletlib.ColorModeGradient,
		StartColor: start,
		EndColor:   end,
	}

	fmt.Println()
	figletlib.PrintColoredMsg("lpsc", font, 80, font.Settings(), "left", colors)
}
