package tile

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestParseKinds(t *testing.T) {
	is := is.New(t)
	kinds, err := ParseKinds("123m456p789s1112z")
	is.NoErr(err)
	is.Equal(kinds, []Kind{
		Man1, Man2, Man3,
		Pin4, Pin5, Pin6,
		Sou7, Sou8, Sou9,
		East, East, East, South,
	})
}

func TestParseKindsErrors(t *testing.T) {
	badInputs := []string{
		"m",
		"123",
		"12x",
		"8z",
		"123m45",
		"1 2m",
	}
	for _, input := range badInputs {
		if _, err := ParseKinds(input); err == nil {
			t.Errorf("expected error for %q, got none", input)
		}
	}
	// the empty string parses to no tiles at all
	kinds, err := ParseKinds("")
	if err == nil && len(kinds) != 0 {
		t.Errorf("expected no kinds for empty input, got %v", kinds)
	}
}

func TestParseKind(t *testing.T) {
	is := is.New(t)
	k, err := ParseKind("5m")
	is.NoErr(err)
	is.Equal(k, Man5)
	_, err = ParseKind("55m")
	is.True(err != nil)
}

func TestKindString(t *testing.T) {
	testCases := []struct {
		kind Kind
		repr string
	}{
		{Man1, "1m"},
		{Man5, "5m"},
		{Pin1, "1p"},
		{Sou9, "9s"},
		{East, "1z"},
		{White, "5z"},
		{Red, "7z"},
	}
	for _, tc := range testCases {
		if got := tc.kind.String(); got != tc.repr {
			t.Errorf("For %d, expected %v, got %v", tc.kind, tc.repr, got)
		}
	}
}

func TestAdjacency(t *testing.T) {
	is := is.New(t)
	// runs never wrap past rank 9 or cross suit boundaries
	is.True(Man7.HasNeighbor(2))
	is.True(!Man8.HasNeighbor(2))
	is.True(!Man9.HasNeighbor(1)) // 9m+1 would be 1p
	is.True(!Sou1.HasNeighbor(-1))
	is.True(Sou1.HasNeighbor(2))
	// honors have no adjacency at all
	is.True(!East.HasNeighbor(1))
	is.True(!Red.HasNeighbor(-1))
	is.True(!North.HasNeighbor(2))
}

func TestSuitAndRank(t *testing.T) {
	is := is.New(t)
	is.Equal(Man1.Suit(), SuitMan)
	is.Equal(Pin5.Suit(), SuitPin)
	is.Equal(Sou9.Suit(), SuitSou)
	is.Equal(Red.Suit(), SuitHonor)
	is.Equal(Man1.Rank(), 1)
	is.Equal(Sou9.Rank(), 9)
	is.Equal(East.Rank(), 1)
	is.Equal(Red.Rank(), 7)
	is.True(Man9.IsNumeric())
	is.True(!East.IsNumeric())
	is.True(East.IsHonor())
}

func TestEmoji(t *testing.T) {
	is := is.New(t)
	is.Equal(Man1.Emoji(), '\U0001F007')
	is.Equal(Sou5.Emoji(), '\U0001F014')
	is.Equal(Pin9.Emoji(), '\U0001F021')
	is.Equal(East.Emoji(), '\U0001F000')
	is.Equal(Red.Emoji(), '\U0001F004')
}

func TestCounts(t *testing.T) {
	var c Counts
	for _, k := range []Kind{Man1, Man1, Pin3, Red} {
		c.Add(k)
	}
	expected := Counts{}
	expected[Man1] = 2
	expected[Pin3] = 1
	expected[Red] = 1
	assert.Equal(t, expected, c)
	assert.Equal(t, 4, c.Total())
	assert.Equal(t, 3, c.Kinds())
	assert.Equal(t, 2, c.CountOf(Man1))
}
