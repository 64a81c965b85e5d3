package display

import (
	"fmt"
	"os"

	"github.com/basecoat/seoimg/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `                _
 ___  ___  ___ (_)_ __ ___   __ _
/ __|/ _ \/ _ \| | '_ ` + "`" + ` _ \ / _` + "`" + ` |
\__ \  __/ (_) | | | | | | | (_| |
|___/\___|\___/|_|_| |_| |_|\__, |
                            |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
