// Package pattern reads and writes cell patterns as YAML.
//
//	name: hourglass
//	cells:
//	  - [0, 3]
//	  - [1, 2, -1]
//
// Each entry is [row, col] or [row, col, level].
package pattern

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"mad-sand/internal/core"
)

// ErrMalformed is returned for pattern entries that are not valid cells.
var ErrMalformed = errors.New("malformed pattern")

// Pattern is a named set of cells relative to an origin.
type Pattern struct {
	Name  string    `yaml:"name,omitempty"`
	Cells [][]int64 `yaml:"cells"`
}

// Load reads a pattern file.
func Load(path string) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing pattern %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a pattern with strict field checking.
func Parse(data []byte) (*Pattern, error) {
	var p Pattern
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if _, err := p.Resolve(0, 0); err != nil {
		return nil, err
	}
	return &p, nil
}

// Resolve converts the entries into cells shifted by (rowOff, colOff).
func (p *Pattern) Resolve(rowOff, colOff uint32) ([]core.Cell, error) {
	out := make([]core.Cell, 0, len(p.Cells))
	for i, entry := range p.Cells {
		if len(entry) != 2 && len(entry) != 3 {
			return nil, fmt.Errorf("%w: entry %d has %d values, want 2 or 3", ErrMalformed, i, len(entry))
		}
		row := entry[0] + int64(rowOff)
		col := entry[1] + int64(colOff)
		if row < 0 || col < 0 || row > math.MaxUint32 || col > math.MaxUint32 {
			return nil, fmt.Errorf("%w: entry %d (%d, %d) out of range", ErrMalformed, i, row, col)
		}
		var level int64
		if len(entry) == 3 {
			level = entry[2]
			if level < math.MinInt32 || level > math.MaxInt32 {
				return nil, fmt.Errorf("%w: entry %d level %d out of range", ErrMalformed, i, level)
			}
		}
		out = append(out, core.At3(uint32(row), uint32(col), int32(level)))
	}
	return out, nil
}

// Apply adds the pattern to grid at (rowOff, colOff) and returns the number
// of cells that were not already occupied. Cells outside the grid are
// skipped.
func (p *Pattern) Apply(grid core.Grid, rowOff, colOff uint32) (int, error) {
	cells, err := p.Resolve(rowOff, colOff)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, c := range cells {
		if !c.InBounds(grid.Rows(), grid.Cols()) || grid.Has(c) {
			continue
		}
		grid.Add(c)
		added++
	}
	return added, nil
}

// FromGrid captures the occupancy of grid. 2D grids produce [row, col]
// entries.
func FromGrid(name string, grid core.Grid) *Pattern {
	cells := grid.DrawableCells()
	p := &Pattern{Name: name, Cells: make([][]int64, len(cells))}
	for i, c := range cells {
		if grid.Dims() == 2 {
			p.Cells[i] = []int64{int64(c.Row), int64(c.Col)}
			continue
		}
		p.Cells[i] = []int64{int64(c.Row), int64(c.Col), int64(c.Level)}
	}
	return p
}

// Write encodes the pattern as YAML with one cell per line.
func (p *Pattern) Write(w io.Writer) error {
	var doc yaml.Node
	if err := doc.Encode(p); err != nil {
		return err
	}
	for _, n := range doc.Content {
		if n.Kind == yaml.SequenceNode {
			for _, entry := range n.Content {
				entry.Style = yaml.FlowStyle
			}
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// Save writes the pattern to path.
func (p *Pattern) Save(path string) error {
	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
