package types

// MatchGroup is the closed line range [Start, End] built around Anchor.
type MatchGroup struct {
	Anchor int // index of the matching line
	Start  int
	End    int
}

// NewMatchGroup clips the context window around anchor to [0, lastIndex].
func NewMatchGroup(anchor, before, after, lastIndex int) MatchGroup {
	return MatchGroup{
		Anchor: anchor,
		Start:  max(0, anchor-before),
		End:    min(lastIndex, anchor+after),
	}
}

// Len returns the number of lines in the group.
func (g MatchGroup) Len() int {
	return g.End - g.Start + 1
}

// Contains reports whether index lies within the group.
func (g MatchGroup) Contains(index int) bool {
	return index >= g.Start && index <= g.End
}
