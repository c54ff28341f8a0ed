package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{}
}

func TestNewPreviewModelDefaults(t *testing.T) {
	m := NewPreviewModel(800, 600)

	if m.Stats.Vesica.Circles != 99 {
		t.Errorf("initial vesica circles = %d, want 99", m.Stats.Vesica.Circles)
	}
	if m.Stats.Helix.CrossTies != 22 {
		t.Errorf("initial cross ties = %d, want 22", m.Stats.Helix.CrossTies)
	}
	if m.Summary == "" {
		t.Error("initial model should carry a summary")
	}
}

func TestPreviewModelAdjustRerenders(t *testing.T) {
	m := NewPreviewModel(800, 600)

	// Cursor starts on vesica rows; one step right makes a 10x11 grid.
	updated, _ := m.Update(keyMsg("right"))
	got := updated.(PreviewModel)

	if got.Stats.Vesica.Circles != 110 {
		t.Errorf("vesica circles after increment = %d, want 110", got.Stats.Vesica.Circles)
	}
}

func TestPreviewModelRespectsMinimum(t *testing.T) {
	m := NewPreviewModel(800, 600)
	m.Cursor = fieldCrossTies
	m.Fields[fieldCrossTies].Value = 1

	updated, _ := m.Update(keyMsg("left"))
	got := updated.(PreviewModel)

	if got.Fields[fieldCrossTies].Value != 1 {
		t.Errorf("cross ties = %g, should not go below 1", got.Fields[fieldCrossTies].Value)
	}
}

func TestPreviewModelReset(t *testing.T) {
	m := NewPreviewModel(800, 600)
	m.Fields[fieldSpiralSamples].Value = 20
	m.rerender()
	if m.Stats.Spiral.Samples != 20 {
		t.Fatalf("spiral samples = %d, want 20", m.Stats.Spiral.Samples)
	}

	updated, _ := m.Update(keyMsg("r"))
	got := updated.(PreviewModel)

	if got.Stats.Spiral.Samples != 144 {
		t.Errorf("spiral samples after reset = %d, want 144", got.Stats.Spiral.Samples)
	}
}

func TestPreviewModelQuit(t *testing.T) {
	m := NewPreviewModel(800, 600)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestPreviewModelView(t *testing.T) {
	m := NewPreviewModel(800, 600)
	view := m.View()

	for _, want := range []string{"Geometry Preview", "vesica rows", "cross ties", "99 circles"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
