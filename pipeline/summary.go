package pipeline

import (
	"fmt"
	"strings"

	"github.com/chapsplit-cli/chapsplit/icon"
	"github.com/chapsplit-cli/chapsplit/style"
	"github.com/chapsplit-cli/chapsplit/util"
	"github.com/charmbracelet/lipgloss"
)

// Summary renders the run report as a bordered box for the terminal.
func (r *Report) Summary() string {
	succeeded := len(r.Segments) - r.Failed

	headline := style.New().Bold(true).Foreground(style.SuccessColor).
		Render(fmt.Sprintf("%s Done: %s", icon.Get(icon.Success), r.Title))
	if r.Failed > 0 {
		headline = style.New().Bold(true).Foreground(style.WarningColor).
			Render(fmt.Sprintf("%s Finished with errors: %s", icon.Get(icon.Warn), r.Title))
	}

	var lines []string
	lines = append(lines, headline, "")
	lines = append(lines, fmt.Sprintf(
		"%s written, %s failed",
		util.Quantify(succeeded, "file", "files"),
		fmt.Sprint(r.Failed),
	))
	for _, res := range r.Segments {
		if res.Err != nil {
			lines = append(lines, style.New().Foreground(style.ErrorColor).
				Render(fmt.Sprintf("  %s %s", icon.Get(icon.Fail), res.Segment.SafeName)))
		}
	}
	lines = append(lines, "", style.Faint("Saved to "+r.Dir))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.BorderColor).
		Padding(1, 2).
		Margin(1, 0)

	return box.Render(strings.Join(lines, "\n"))
}
