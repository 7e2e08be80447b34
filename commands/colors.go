package commands

import "github.com/mgutz/ansi"

var (
	red    = ansi.ColorFunc("red+b")
	yellow = ansi.ColorFunc("yellow+b")
)

// Failed prefixes a fatal error message the way every other status line is
// prefixed.
func Failed(err error) string {
	return red("[FAILED]") + " " + err.Error()
}
