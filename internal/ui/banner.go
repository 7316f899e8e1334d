package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarystats/internal/utils"
)

const bannerText = `
 ___  __ _| | __ _ _ __ _   _   ___| |_ __ _| |_ ___
/ __|/ _' | |/ _' | '__| | | | / __| __/ _' | __/ __|
\__ \ (_| | | (_| | |  | |_| | \__ \ || (_| | |_\__ \
|___/\__,_|_|\__,_|_|   \__, | |___/\__\__,_|\__|___/
                        |___/   hh.ru + superjob.ru
`

// ColorizeText applies a random color gradient to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	half := len(chars)/2 + 1

	var b strings.Builder
	for i, ch := range chars {
		b.WriteString(startColor.Fade(0, float32(half), float32(i%half), endColor).Sprint(ch))
	}
	return b.String()
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}

// ColorizeSalary colors a monthly ruble salary by band
func ColorizeSalary(avg *int) string {
	if avg == nil {
		return ""
	}

	formatted := utils.FormatSalary(avg)

	switch {
	case *avg >= 300000:
		return pterm.Green(formatted)
	case *avg >= 200000:
		return pterm.LightGreen(formatted)
	case *avg >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
