package display

import (
	"fmt"
	"os"

	"github.com/backmassage/audioprobe/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `    _             _ _       ____            _
   / \  _   _  __| (_) ___ |  _ \ _ __ ___ | |__   ___
  / _ \| | | |/ _`+"`"+` | |/ _ \| |_) | '__/ _ \| '_ \ / _ \
 / ___ \ |_| | (_| | | (_) |  __/| | | (_) | |_) |  __/
/_/   \_\__,_|\__,_|_|\___/|_|   |_|  \___/|_.__/ \___|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
