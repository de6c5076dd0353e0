package assets

import (
	_ "embed"
	"strings"
)

// HelpText contains the raw help overlay text.
//
//go:embed help.txt
var HelpText string

// HelpLines returns the help overlay split into lines without the trailing
// empty line.
func HelpLines() []string {
	text := strings.TrimRight(strings.ReplaceAll(HelpText, "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
