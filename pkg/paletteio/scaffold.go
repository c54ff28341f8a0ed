package paletteio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lumenarts/cosmoglyph/pkg/errors"
	"github.com/lumenarts/cosmoglyph/pkg/geometry"
)

// scaffoldDoc is the JSON shape of a scaffold document.
type scaffoldDoc struct {
	Nodes []scaffoldNode `json:"nodes"`
	Edges []scaffoldEdge `json:"edges"`
}

type scaffoldNode struct {
	ID    string   `json:"id"`
	Title string   `json:"title,omitempty"`
	Level int      `json:"level,omitempty"`
	X     *float64 `json:"x,omitempty"`
}

type scaffoldEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ReadScaffold decodes a scaffold document from r into a tree override.
// Node ids are validated; duplicate ids are rejected so a typo cannot
// silently collapse two nodes into one.
func ReadScaffold(r io.Reader) (*geometry.TreePatch, error) {
	var doc scaffoldDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGeometry, err, "decode scaffold")
	}
	if len(doc.Nodes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "scaffold has no nodes")
	}

	patch := &geometry.TreePatch{
		Nodes: make([]geometry.ScaffoldNodePatch, len(doc.Nodes)),
		Edges: make([][]string, len(doc.Edges)),
	}

	seen := make(map[string]bool, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if err := errors.ValidateScaffoldID(n.ID); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		if seen[n.ID] {
			return nil, errors.New(errors.ErrCodeInvalidGeometry, "duplicate node id: %q", n.ID)
		}
		seen[n.ID] = true
		patch.Nodes[i] = geometry.ScaffoldNodePatch{
			ID:      n.ID,
			Title:   n.Title,
			Level:   n.Level,
			XFactor: n.X,
		}
	}
	for i, e := range doc.Edges {
		patch.Edges[i] = []string{e.From, e.To}
	}

	return patch, nil
}

// ImportScaffold reads a scaffold document from a file at path.
func ImportScaffold(path string) (*geometry.TreePatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadScaffold(f)
}

// WriteScaffold encodes a resolved tree configuration as an indented
// JSON document. The output can be re-imported with [ReadScaffold].
func WriteScaffold(cfg geometry.TreeConfig, w io.Writer) error {
	doc := scaffoldDoc{
		Nodes: make([]scaffoldNode, len(cfg.Nodes)),
		Edges: make([]scaffoldEdge, len(cfg.Edges)),
	}
	for i, n := range cfg.Nodes {
		x := n.XFactor
		doc.Nodes[i] = scaffoldNode{ID: n.ID, Title: n.Title, Level: n.Level, X: &x}
	}
	for i, e := range cfg.Edges {
		doc.Edges[i] = scaffoldEdge{From: e[0], To: e[1]}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportScaffold writes a scaffold document to a file at path.
func ExportScaffold(cfg geometry.TreeConfig, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteScaffold(cfg, f)
}
