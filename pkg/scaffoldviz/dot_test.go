package scaffoldviz

import (
	"strings"
	"testing"

	"github.com/lumenarts/cosmoglyph/pkg/geometry"
)

func defaultTree() geometry.TreeConfig {
	return geometry.NormalizeGeometry(geometry.DefaultNumerology()).Tree
}

func TestToDOTDefaultScaffold(t *testing.T) {
	dot := ToDOT(defaultTree(), Options{})

	if !strings.HasPrefix(dot, "digraph scaffold {") {
		t.Fatalf("unexpected preamble:\n%s", dot)
	}
	if !strings.Contains(dot, `"keter" [label="Keter"];`) {
		t.Errorf("node line missing:\n%s", dot)
	}
	if !strings.Contains(dot, `"keter" -> "chokmah";`) {
		t.Errorf("edge line missing:\n%s", dot)
	}
	// Chokmah and Binah share level 1
	if !strings.Contains(dot, `{ rank=same; "chokmah"; "binah" }`) {
		t.Errorf("rank grouping missing:\n%s", dot)
	}
	// Diagram colors come from the default palette
	if !strings.Contains(dot, `bgcolor="#0e0d0d";`) {
		t.Errorf("background color missing:\n%s", dot)
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	cfg := geometry.TreeConfig{
		Nodes: []geometry.ScaffoldNode{{ID: "solo", Title: "Solo", Level: 2, XFactor: 0.25}},
	}
	dot := ToDOT(cfg, Options{Detailed: true})

	if !strings.Contains(dot, `label="Solo\nlevel: 2\nx: 0.25"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOTSkipsUnknownEdges(t *testing.T) {
	cfg := geometry.TreeConfig{
		Nodes: []geometry.ScaffoldNode{
			{ID: "a", Title: "a"},
			{ID: "b", Title: "b", Level: 1},
		},
		Edges: []geometry.ScaffoldEdge{
			{"a", "b"},
			{"a", "ghost"},
		},
	}
	dot := ToDOT(cfg, Options{})

	if !strings.Contains(dot, `"a" -> "b";`) {
		t.Errorf("known edge missing:\n%s", dot)
	}
	if strings.Contains(dot, "ghost") {
		t.Errorf("unknown edge should be dropped:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>
<svg width="134pt" height="116pt" viewBox="0.00 0.00 134.00 116.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 134.00 116.00"`) {
		t.Errorf("viewBox not normalized:\n%s", out)
	}
	if !strings.Contains(out, `width="134" height="116"`) {
		t.Errorf("pixel size missing:\n%s", out)
	}
	if strings.Contains(out, "pt") {
		t.Errorf("point units should be gone:\n%s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg></svg>")
	if got := string(normalizeViewBox(in)); got != "<svg></svg>" {
		t.Errorf("input without a viewBox should pass through: %s", got)
	}
}
