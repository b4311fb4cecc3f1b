// Package progress renders the short console progress bar shown while an
// order is being placed. Purely cosmetic feedback; nothing depends on it.
package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

const barWidth = 40

// Track redraws a progress bar over steps ticks, sleeping delay between
// ticks. With delay 0 it completes instantly (tests pass 0).
func Track(label string, steps int, delay time.Duration) {
	if steps <= 0 {
		steps = 1
	}
	bar := color.New(color.FgGreen)

	for i := 1; i <= steps; i++ {
		filled := barWidth * i / steps
		fmt.Printf("\r%s %s%s %3d%%", label,
			bar.Sprint(strings.Repeat("━", filled)),
			strings.Repeat(" ", barWidth-filled),
			100*i/steps)
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	fmt.Println()
}
