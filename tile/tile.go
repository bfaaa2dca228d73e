// Package tile defines the 34 riichi tile kinds, their ordering and
// adjacency rules, and frequency tables over them.
package tile

import "fmt"

// Kind is a machine-friendly tile identity, 0 through 33. The three
// numeric suits come first (man, pin, sou, ranks 1-9 each), then the
// seven honors. Ordering is simply index order.
type Kind uint8

const (
	Man1 Kind = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
	Sou1
	Sou2
	Sou3
	Sou4
	Sou5
	Sou6
	Sou7
	Sou8
	Sou9
	East
	South
	West
	North
	White
	Green
	Red
)

// NumKinds is the size of the tile alphabet.
const NumKinds = 34

// RanksPerSuit is the number of ranks in each numeric suit.
const RanksPerSuit = 9

// Suit partitions the kinds into the three numeric suits and the honor
// group.
type Suit uint8

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitHonor
)

var suitLetters = [4]byte{'m', 'p', 's', 'z'}

// Letter returns the mpsz letter for this suit.
func (s Suit) Letter() string {
	return string(suitLetters[s])
}

// TerminalsAndHonors lists the thirteen kinds relevant to the
// thirteen-orphans form: rank 1 and 9 of each suit plus every honor.
var TerminalsAndHonors = [13]Kind{
	Man1, Man9, Pin1, Pin9, Sou1, Sou9,
	East, South, West, North, White, Green, Red,
}

// Valid reports whether k is inside the 34-kind domain.
func (k Kind) Valid() bool {
	return k < NumKinds
}

// Suit returns the suit group of this kind.
func (k Kind) Suit() Suit {
	return Suit(k / RanksPerSuit)
}

// IsNumeric reports whether k belongs to one of the three numeric suits.
func (k Kind) IsNumeric() bool {
	return k < East
}

// IsHonor reports whether k is a wind or dragon.
func (k Kind) IsHonor() bool {
	return k >= East && k < NumKinds
}

// Rank returns the 1-based rank within a numeric suit. Honors have
// ranks 1-7 in their own group, matching the z digits of mpsz notation.
func (k Kind) Rank() int {
	return int(k%RanksPerSuit) + 1
}

// HasNeighbor reports whether k+delta names a tile adjacent to k for
// run-building purposes: same numeric suit, no wrapping past rank 9 or
// below rank 1. Honors never have neighbors.
func (k Kind) HasNeighbor(delta int) bool {
	if !k.IsNumeric() {
		return false
	}
	r := k.Rank() + delta
	return r >= 1 && r <= RanksPerSuit
}

// Neighbor returns k shifted by delta within its suit. Callers must
// check HasNeighbor first.
func (k Kind) Neighbor(delta int) Kind {
	return Kind(int(k) + delta)
}

// String renders the kind in mpsz notation, e.g. "5m" or "3z".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind<%d>", uint8(k))
	}
	return fmt.Sprintf("%d%c", k.Rank(), suitLetters[k.Suit()])
}

// Unicode mahjong-tile block. The man tiles start at U+1F007, sou at
// U+1F010, pin at U+1F019; the honors are individually placed.
var emojiBases = [3]rune{'\U0001F007', '\U0001F019', '\U0001F010'}

var honorEmoji = [7]rune{
	'\U0001F000', // east
	'\U0001F001', // south
	'\U0001F002', // west
	'\U0001F003', // north
	'\U0001F006', // white
	'\U0001F005', // green
	'\U0001F004', // red
}

// Emoji returns the Unicode mahjong character for this kind.
func (k Kind) Emoji() rune {
	if k.IsHonor() {
		return honorEmoji[k-East]
	}
	return emojiBases[k.Suit()] + rune(k.Rank()-1)
}

// ParseKind parses a single mpsz token such as "5m" or "3z".
func ParseKind(s string) (Kind, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("malformed tile %q", s)
	}
	ks, err := ParseKinds(s)
	if err != nil {
		return 0, err
	}
	return ks[0], nil
}

// ParseKinds parses a run of mpsz groups, e.g. "123m456p11z", into the
// kinds named, in notation order. Digits accumulate until a suit letter
// assigns them a suit.
func ParseKinds(s string) ([]Kind, error) {
	var kinds []Kind
	var pending []int
	for _, c := range s {
		switch {
		case c >= '1' && c <= '9':
			pending = append(pending, int(c-'0'))
		case c == 'm' || c == 'p' || c == 's' || c == 'z':
			if len(pending) == 0 {
				return nil, fmt.Errorf("suit %q with no ranks in %q", c, s)
			}
			base, maxRank := suitBase(byte(c))
			for _, r := range pending {
				if r > maxRank {
					return nil, fmt.Errorf("rank %d out of range for suit %q in %q", r, c, s)
				}
				kinds = append(kinds, base+Kind(r-1))
			}
			pending = pending[:0]
		default:
			return nil, fmt.Errorf("unexpected character %q in %q", c, s)
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("trailing ranks with no suit in %q", s)
	}
	return kinds, nil
}

func suitBase(letter byte) (Kind, int) {
	switch letter {
	case 'm':
		return Man1, 9
	case 'p':
		return Pin1, 9
	case 's':
		return Sou1, 9
	default:
		return East, 7
	}
}
