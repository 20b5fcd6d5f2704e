package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"github.com/ArjunSarkar1/ClipsMaker/internal/types"
)

// printSummary renders the ranked clip list for the operator. Styling is
// applied only when writing to a terminal.
func printSummary(w io.Writer, m types.Manifest) {
	if len(m.Clips) == 0 {
		fmt.Fprintln(w, "No suitable engagement segments found. Try a longer video or different content.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Generated clips (%s)", m.RunID)
	t.AppendHeader(table.Row{"#", "Window", "Duration", "Score", "Source", "Text"})
	for i, c := range m.Clips {
		t.AppendRow(table.Row{
			i + 1,
			fmt.Sprintf("%.1fs - %.1fs", c.StartSec, c.EndSec),
			fmt.Sprintf("%.1fs", c.DurationSec),
			fmt.Sprintf("%.3f", c.EngagementScore),
			c.Source,
			truncate(c.Text, 60),
		})
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		t.SetStyle(table.StyleColoredBright)
	}
	t.Render()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
