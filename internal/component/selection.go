package component

import "go-hex-defense/internal/types"

// Selection is the two-click route picker state. Zero handles mean "no pick".
type Selection struct {
	First  types.EntityID
	Second types.EntityID
}

// Complete reports whether both picks are recorded.
func (s *Selection) Complete() bool {
	return s.First != types.None && s.Second != types.None
}

func (s *Selection) Reset() {
	s.First, s.Second = types.None, types.None
}
