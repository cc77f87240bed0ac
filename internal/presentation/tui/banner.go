package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the mael banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  _ __ ___   __ _  ___| |", "#34d399"},
		{" | '_ ` _ \\ / _` |/ _ \\ |", "#2dd4bf"},
		{" | | | | | | (_| |  __/ |", "#22d3ee"},
		{" |_| |_| |_|\\__,_|\\___|_|", "#38bdf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
