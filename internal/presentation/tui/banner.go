package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the cmdform banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text, color string
	}{
		{"                     _  __                      ", "#818cf8"},
		{"   ___ _ __ ___   __| |/ _| ___  _ __ _ __ ___  ", "#a78bfa"},
		{"  / __| '_ ` _ \\ / _` | |_ / _ \\| '__| '_ ` _ \\ ", "#c084fc"},
		{" | (__| | | | | | (_| |  _| (_) | |  | | | | | |", "#e879f9"},
		{"  \\___|_| |_| |_|\\__,_|_|  \\___/|_|  |_| |_| |_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
