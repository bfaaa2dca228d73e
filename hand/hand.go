// Package hand models a player's tiles: exactly thirteen concealed
// tiles, an optional just-drawn tile, and any declared melds. A Hand is
// immutable once constructed.
package hand

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yakuman/nanikiru/tile"
)

// ConcealedTiles is the number of concealed tiles every hand holds.
const ConcealedTiles = 13

// ErrInvalidHandSize is returned when a hand is constructed with a
// concealed-tile count other than thirteen.
var ErrInvalidHandSize = errors.New("hand must hold exactly 13 concealed tiles")

// Hand is an immutable snapshot of a player's tiles.
type Hand struct {
	concealed []tile.Kind // kept sorted
	drawn     tile.Kind
	hasDrawn  bool
	melds     []Meld
}

// New creates a hand from thirteen concealed tiles and any declared
// melds. The concealed slice is copied and sorted.
func New(concealed []tile.Kind, melds ...Meld) (*Hand, error) {
	if len(concealed) != ConcealedTiles {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidHandSize, len(concealed))
	}
	h := &Hand{concealed: make([]tile.Kind, ConcealedTiles)}
	copy(h.concealed, concealed)
	sort.Slice(h.concealed, func(i, j int) bool {
		return h.concealed[i] < h.concealed[j]
	})
	h.melds = copyMelds(melds)
	return h, nil
}

// NewWithDrawn creates a hand that additionally holds a just-drawn
// fourteenth tile.
func NewWithDrawn(concealed []tile.Kind, drawn tile.Kind, melds ...Meld) (*Hand, error) {
	h, err := New(concealed, melds...)
	if err != nil {
		return nil, err
	}
	h.drawn = drawn
	h.hasDrawn = true
	return h, nil
}

// FromString parses mpsz hand notation such as "123m456p789s1112z 2z":
// thirteen concealed tiles, optionally followed by a space and one
// drawn tile.
func FromString(s string, melds ...Meld) (*Hand, error) {
	concealedStr, drawnStr, hasDrawn := strings.Cut(strings.TrimSpace(s), " ")
	concealed, err := tile.ParseKinds(concealedStr)
	if err != nil {
		return nil, err
	}
	if !hasDrawn {
		return New(concealed, melds...)
	}
	drawn, err := tile.ParseKind(strings.TrimSpace(drawnStr))
	if err != nil {
		return nil, err
	}
	return NewWithDrawn(concealed, drawn, melds...)
}

func copyMelds(melds []Meld) []Meld {
	if len(melds) == 0 {
		return nil
	}
	out := make([]Meld, len(melds))
	for i, m := range melds {
		out[i] = Meld{
			Tiles:  append([]tile.Kind(nil), m.Tiles...),
			Kind:   m.Kind,
			Source: m.Source,
		}
	}
	return out
}

// Counts summarizes the whole hand into a frequency table: concealed
// tiles, every meld tile, and the drawn tile if present. It is
// recomputed fresh on every call; the caller owns the result.
func (h *Hand) Counts() tile.Counts {
	var c tile.Counts
	for _, k := range h.concealed {
		c.Add(k)
	}
	for _, m := range h.melds {
		for _, k := range m.Tiles {
			c.Add(k)
		}
	}
	if h.hasDrawn {
		c.Add(h.drawn)
	}
	return c
}

// Concealed returns a copy of the sorted concealed tiles.
func (h *Hand) Concealed() []tile.Kind {
	return append([]tile.Kind(nil), h.concealed...)
}

// Drawn returns the just-drawn tile, if any.
func (h *Hand) Drawn() (tile.Kind, bool) {
	return h.drawn, h.hasDrawn
}

// Melds returns a copy of the declared melds.
func (h *Hand) Melds() []Meld {
	return copyMelds(h.melds)
}

// String renders the hand in mpsz notation, concealed tiles first and
// the drawn tile after a space.
func (h *Hand) String() string {
	var sb strings.Builder
	writeKinds(&sb, h.concealed)
	if h.hasDrawn {
		sb.WriteByte(' ')
		sb.WriteString(h.drawn.String())
	}
	return sb.String()
}

// Emoji renders the hand with the Unicode mahjong tile block.
func (h *Hand) Emoji() string {
	var sb strings.Builder
	for _, k := range h.concealed {
		sb.WriteRune(k.Emoji())
	}
	if h.hasDrawn {
		sb.WriteByte(' ')
		sb.WriteRune(h.drawn.Emoji())
	}
	return sb.String()
}

// writeKinds writes a sorted tile sequence in compact mpsz form,
// grouping consecutive ranks under one suit letter.
func writeKinds(sb *strings.Builder, kinds []tile.Kind) {
	for i, k := range kinds {
		sb.WriteByte(byte('0' + k.Rank()))
		if i == len(kinds)-1 || kinds[i+1].Suit() != k.Suit() {
			sb.WriteString(k.Suit().Letter())
		}
	}
}
