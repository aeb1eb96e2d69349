package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	idStyle     = color.New(color.FgYellow)
	scoreStyle  = color.New(color.FgGreen)
	dimStyle    = color.New(color.Faint)
	errorStyle  = color.New(color.FgRed, color.Bold)
)

func header(w io.Writer, format string, args ...any) {
	headerStyle.Fprintf(w, format+"\n", args...)
}

// row prints "#id  name  [score]" with an optional dimmed detail line.
func row(w io.Writer, id int64, name string, score int, detail string) {
	idStyle.Fprintf(w, "#%-4d ", id)
	fmt.Fprint(w, name)
	if score >= 0 {
		scoreStyle.Fprintf(w, "  [%d]", score)
	}
	fmt.Fprintln(w)
	if detail != "" {
		dimStyle.Fprintf(w, "      %s\n", detail)
	}
}
