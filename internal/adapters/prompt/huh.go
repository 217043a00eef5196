// Package prompt provides operator prompt adapters.
// Clean Architecture: Adapter implementing ports.RegionPrompter.
package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/0xcro3dile/mapextract/internal/domain/entities"
)

var (
	indexStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle  = lipgloss.NewStyle()
)

// HuhPrompter asks for a region number with a huh input field.
type HuhPrompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
}

// NewHuhPrompter creates a prompter on the given streams. Accessible mode reads
// a plain line instead of running the full-screen form.
func NewHuhPrompter(in io.Reader, out io.Writer, accessible bool) *HuhPrompter {
	return &HuhPrompter{in: in, out: out, accessible: accessible}
}

// Prompt lists the regions and returns the raw answer.
func (p *HuhPrompter) Prompt(ctx context.Context, regions []entities.Region) (string, error) {
	var answer string

	input := huh.NewInput().
		Title("Reset region #").
		Description(RegionMenu(regions)).
		Value(&answer)

	form := huh.NewForm(huh.NewGroup(input)).
		WithAccessible(p.accessible).
		WithInput(p.in).
		WithOutput(p.out)

	if err := form.RunWithContext(ctx); err != nil {
		return "", fmt.Errorf("reading region selection: %w", err)
	}
	return answer, nil
}

// RegionMenu renders the numbered region list.
func RegionMenu(regions []entities.Region) string {
	var sb strings.Builder
	sb.WriteString("Which region would you like to reset?\n\n")
	for i, r := range regions {
		sb.WriteString("  ")
		sb.WriteString(indexStyle.Render(fmt.Sprintf("%d", i)))
		sb.WriteString("\t")
		sb.WriteString(nameStyle.Render(r.Name))
		sb.WriteString("\n")
	}
	return sb.String()
}
