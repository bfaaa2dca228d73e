package hand

import "github.com/yakuman/nanikiru/tile"

// MeldKind is the shape of a declared meld.
type MeldKind uint8

const (
	MeldTriplet MeldKind = iota
	MeldSequence
	MeldQuad
)

func (mk MeldKind) String() string {
	switch mk {
	case MeldTriplet:
		return "triplet"
	case MeldSequence:
		return "sequence"
	case MeldQuad:
		return "quad"
	}
	return "unknown"
}

// MeldSource is the seat a meld was claimed from.
type MeldSource uint8

const (
	SourceSelfDraw MeldSource = iota
	SourceLeftNeighbor
	SourceAcrossOpponent
	SourceRightNeighbor
)

// Meld is a fixed, already-declared group of tiles. Legality of the
// declaration is the caller's business; the engine only ever consumes
// the tile multiset.
type Meld struct {
	Tiles  []tile.Kind
	Kind   MeldKind
	Source MeldSource
}
