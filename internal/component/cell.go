package component

import "go-hex-defense/pkg/hexmap"

// HighlightFlags marks why a cell is drawn highlighted. Flags from different
// sources are independent so clearing one never hides another.
type HighlightFlags uint8

const (
	HighlightPath  HighlightFlags = 1 << iota // walker route
	HighlightRoute                            // route chosen with two picks
	HighlightPick                             // first pick waiting for the second
)

// Cell is the payload of a map cell entity.
type Cell struct {
	Hex       hexmap.Hex
	Highlight HighlightFlags
}

func (c *Cell) Has(f HighlightFlags) bool { return c.Highlight&f != 0 }
func (c *Cell) Set(f HighlightFlags)      { c.Highlight |= f }
func (c *Cell) Clear(f HighlightFlags)    { c.Highlight &^= f }
