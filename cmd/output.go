package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	gray   = color.New(color.FgHiBlack)
	bold   = color.New(color.Bold)
)

// rule prints a horizontal divider of width n.
func rule(w io.Writer, n int) {
	fmt.Fprintln(w, gray.Sprint(strings.Repeat("─", n)))
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
