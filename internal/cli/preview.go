package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lumenarts/cosmoglyph/pkg/geometry"
	"github.com/lumenarts/cosmoglyph/pkg/surface/record"
)

// Preview styles
var (
	previewSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	previewDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the interactive geometry preview command. It
// runs a terminal UI where the numeric constants behind each layer can
// be nudged and the resulting layer statistics are recomputed live.
func (c *CLI) previewCommand() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Tune geometry counts interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := NewPreviewModel(width, height)
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 800, "preview width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "preview height in pixels")
	return cmd
}

// =============================================================================
// PreviewModel - Interactive geometry tuning
// =============================================================================

// previewField is one adjustable numeric constant.
type previewField struct {
	Name    string
	Value   float64
	Default float64
	Min     float64
	Step    float64
}

// Field order matches the previewPatch assignment below.
const (
	fieldVesicaRows = iota
	fieldVesicaColumns
	fieldSpiralSamples
	fieldMarkerInterval
	fieldHelixSamples
	fieldCrossTies
	fieldCount
)

// PreviewModel is the bubbletea model for the geometry preview.
type PreviewModel struct {
	Width   int
	Height  int
	Fields  []previewField
	Cursor  int
	Stats   geometry.Stats
	Summary string
}

// NewPreviewModel creates a preview model seeded with the default
// numerology and an initial render.
func NewPreviewModel(width, height int) PreviewModel {
	n := geometry.DefaultNumerology()
	m := PreviewModel{
		Width:  width,
		Height: height,
		Fields: []previewField{
			{Name: "vesica rows", Value: n.Nine, Default: n.Nine, Min: 2, Step: 1},
			{Name: "vesica columns", Value: n.Eleven, Default: n.Eleven, Min: 2, Step: 1},
			{Name: "spiral samples", Value: n.OneFortyFour, Default: n.OneFortyFour, Min: 2, Step: 1},
			{Name: "marker interval", Value: n.Seven, Default: n.Seven, Min: 1, Step: 1},
			{Name: "helix samples", Value: n.NinetyNine, Default: n.NinetyNine, Min: 2, Step: 1},
			{Name: "cross ties", Value: n.TwentyTwo, Default: n.TwentyTwo, Min: 1, Step: 1},
		},
	}
	m.rerender()
	return m
}

// previewPatch maps the field values back onto a numerology patch.
func (m *PreviewModel) previewPatch() *geometry.NumerologyPatch {
	return &geometry.NumerologyPatch{
		Nine:         &m.Fields[fieldVesicaRows].Value,
		Eleven:       &m.Fields[fieldVesicaColumns].Value,
		OneFortyFour: &m.Fields[fieldSpiralSamples].Value,
		Seven:        &m.Fields[fieldMarkerInterval].Value,
		NinetyNine:   &m.Fields[fieldHelixSamples].Value,
		TwentyTwo:    &m.Fields[fieldCrossTies].Value,
	}
}

// rerender repaints onto a recording surface and captures the stats.
func (m *PreviewModel) rerender() {
	res := geometry.Render(record.New(m.Width, m.Height), geometry.Options{
		Numerology: m.previewPatch(),
	})
	m.Stats = res.Stats
	m.Summary = res.Summary
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < fieldCount-1 {
				m.Cursor++
			}
		case "left", "h":
			f := &m.Fields[m.Cursor]
			if f.Value-f.Step >= f.Min {
				f.Value -= f.Step
				m.rerender()
			}
		case "right", "l":
			m.Fields[m.Cursor].Value += m.Fields[m.Cursor].Step
			m.rerender()
		case "r":
			for i := range m.Fields {
				m.Fields[i].Value = m.Fields[i].Default
			}
			m.rerender()
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Geometry Preview"))
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render("↑/↓ select  ←/→ adjust  r reset  q quit"))
	b.WriteString("\n\n")

	for i, f := range m.Fields {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-16s %g", cursor, f.Name, f.Value)
		if i == m.Cursor {
			b.WriteString(previewSelectedStyle.Render(line))
		} else {
			b.WriteString(previewNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Layer", "Stats").
		Rows(
			[]string{"vesica", fmt.Sprintf("%d circles", m.Stats.Vesica.Circles)},
			[]string{"tree", fmt.Sprintf("%d paths, %d nodes", m.Stats.Tree.Paths, m.Stats.Tree.Nodes)},
			[]string{"spiral", fmt.Sprintf("%d samples, %d markers", m.Stats.Spiral.Samples, m.Stats.Spiral.Markers)},
			[]string{"helix", fmt.Sprintf("%d points, %d ties", m.Stats.Helix.StrandPoints, m.Stats.Helix.CrossTies)},
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(previewDimStyle.Render("  " + m.Summary))
	b.WriteString("\n")

	return b.String()
}
