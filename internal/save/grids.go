package save

import (
	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
)

// GridCell is one named cell of the partition-grid tree: a 64-bit integer
// coordinate triple, the level instances that live in it, and any child
// cells nested beneath it.
type GridCell struct {
	Name       string
	X, Y, Z    int64
	LevelNames []string
	Children   []GridCell
}

// Grids is the full partition-grid forest read right after the body hash.
// Its internal shape carries no gameplay meaning to this codec; it is
// walked structurally so it round-trips byte-for-byte without needing to be
// interpreted.
type Grids struct {
	Cells []GridCell
}

// ReadGrids reads the grid forest: a uint32 count of top-level cells, then
// that many recursively-nested cells.
func ReadGrids(r *cursor.Reader) (Grids, error) {
	count, err := r.Uint32()
	if err != nil {
		return Grids{}, err
	}
	cells := make([]GridCell, count)
	for i := range cells {
		if cells[i], err = readGridCell(r); err != nil {
			return Grids{}, err
		}
	}
	return Grids{Cells: cells}, nil
}

func readGridCell(r *cursor.Reader) (GridCell, error) {
	var c GridCell
	var err error

	if c.Name, err = r.String(); err != nil {
		return c, err
	}
	if c.X, err = r.Int64(); err != nil {
		return c, err
	}
	if c.Y, err = r.Int64(); err != nil {
		return c, err
	}
	if c.Z, err = r.Int64(); err != nil {
		return c, err
	}

	levelCount, err := r.Uint32()
	if err != nil {
		return c, err
	}
	c.LevelNames = make([]string, levelCount)
	for i := range c.LevelNames {
		if c.LevelNames[i], err = r.String(); err != nil {
			return c, err
		}
	}

	childCount, err := r.Uint32()
	if err != nil {
		return c, err
	}
	c.Children = make([]GridCell, childCount)
	for i := range c.Children {
		if c.Children[i], err = readGridCell(r); err != nil {
			return c, err
		}
	}

	return c, nil
}

// WriteGrids writes the grid forest in the same shape ReadGrids consumed.
func WriteGrids(w *cursor.Writer, g Grids) {
	w.WriteUint32(uint32(len(g.Cells)))
	for _, c := range g.Cells {
		writeGridCell(w, c)
	}
}

func writeGridCell(w *cursor.Writer, c GridCell) {
	w.WriteString(c.Name)
	w.WriteInt64(c.X)
	w.WriteInt64(c.Y)
	w.WriteInt64(c.Z)

	w.WriteUint32(uint32(len(c.LevelNames)))
	for _, n := range c.LevelNames {
		w.WriteString(n)
	}

	w.WriteUint32(uint32(len(c.Children)))
	for _, child := range c.Children {
		writeGridCell(w, child)
	}
}
