package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"numfacts/internal/facts"
)

const dividerWidth = 50

// RenderBattery writes a heading followed by every section's facts, with
// values aligned in a column per section. Facts print in their declared
// order.
func RenderBattery(w io.Writer, styles Styles, heading string, sections []facts.Section) error {
	divider := styles.Divider.Render(strings.Repeat("=", dividerWidth))
	if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", divider, styles.Banner.Render(heading), divider); err != nil {
		return fmt.Errorf("render %q: %w", heading, err)
	}

	for i, section := range sections {
		title := styles.Section.Render(fmt.Sprintf("%d. %s", i+1, section.Title))
		if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
			return fmt.Errorf("render %q: %w", section.Title, err)
		}

		labelWidth := 0
		for _, f := range section.Facts {
			if lw := lipgloss.Width(f.Label); lw > labelWidth {
				labelWidth = lw
			}
		}

		for _, f := range section.Facts {
			label := styles.Label.Render(f.Label)
			pad := strings.Repeat(" ", labelWidth-lipgloss.Width(f.Label))
			value := styles.Value.Render(f.Render())
			if _, err := fmt.Fprintf(w, "  %s%s  %s\n", label, pad, value); err != nil {
				return fmt.Errorf("render %q: %w", section.Title, err)
			}
		}
	}
	return nil
}
