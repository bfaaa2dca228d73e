package shanten

import (
	"testing"

	"github.com/matryer/is"

	"github.com/yakuman/nanikiru/hand"
	"github.com/yakuman/nanikiru/tile"
)

func standardShanten(t *testing.T, s string) int {
	t.Helper()
	return CalcForm(mustHand(t, s), Standard).Shanten
}

func TestStandardCompleteHands(t *testing.T) {
	testCases := []struct {
		hand    string
		shanten int
	}{
		// three runs plus an isolated honor triplet and pair
		{"123m456p789s1112z 2z", -1},
		// all triplets
		{"11122233344m11p 1p", -1},
		// triplet and run sharing a suit region
		{"111234m567p99s11z 9s", -1},
	}
	for _, tc := range testCases {
		if got := standardShanten(t, tc.hand); got != tc.shanten {
			t.Errorf("For %v, expected %v, got %v", tc.hand, tc.shanten, got)
		}
	}
}

func TestStandardTenpai(t *testing.T) {
	is := is.New(t)
	// four sets done, waiting on the head
	is.Equal(standardShanten(t, "123m456p789s1112z"), 0)
	// nine gates with a dead honor draw
	is.Equal(standardShanten(t, "1112345678999m 1z"), 0)
}

func TestStandardFarFromTenpai(t *testing.T) {
	is := is.New(t)
	// nothing but isolated tiles: no blocks at all
	is.Equal(standardShanten(t, "147m258p369s1234z"), 8)
}

func TestStandardPartialBlocks(t *testing.T) {
	is := is.New(t)
	// best reading: 789s and 678p runs, 22m and 22s pairs, 56m partial
	is.Equal(standardShanten(t, "22356m468p22789s 7p"), 1)
}

func TestStandardWithQuadMeld(t *testing.T) {
	is := is.New(t)
	quad := hand.Meld{
		Tiles:  []tile.Kind{tile.North, tile.North, tile.North, tile.North},
		Kind:   hand.MeldQuad,
		Source: hand.SourceSelfDraw,
	}
	h, err := hand.FromString("1122m3344p5566s1z", quad)
	is.NoErr(err)
	is.Equal(CalcForm(h, Standard).Shanten, 0)
}

// The search mutates one shared table and must restore every take; a
// leaked take would change the result of a second pass.
func TestStandardRestoresCounts(t *testing.T) {
	is := is.New(t)
	h := mustHand(t, "1112345678999m 1z")
	before := h.Counts()
	first := CalcForm(h, Standard)
	is.Equal(h.Counts(), before)
	is.Equal(CalcForm(h, Standard), first)
}

func TestDecomposerScore(t *testing.T) {
	is := is.New(t)
	d := &decomposer{fixedSets: 2, sets: 2, pairs: 1}
	is.Equal(d.score(), -1)
	d = &decomposer{}
	is.Equal(d.score(), 8)
	d = &decomposer{sets: 3, partials: 2}
	is.Equal(d.score(), 0)
}

func TestExtractIsolatedTriplets(t *testing.T) {
	is := is.New(t)
	d := &decomposer{}
	d.counts[tile.East] = 3
	d.counts[tile.Man5] = 3
	d.counts[tile.Sou1] = 3
	d.counts[tile.Sou3] = 1 // within reach of 1s, blocks extraction
	is.Equal(d.extractIsolatedTriplets(), 2)
	is.Equal(d.counts[tile.East], 0)
	is.Equal(d.counts[tile.Man5], 0)
	is.Equal(d.counts[tile.Sou1], 3)
}

func TestExtractIsolatedRuns(t *testing.T) {
	is := is.New(t)
	d := &decomposer{}
	// isolated double run
	for _, k := range []tile.Kind{tile.Pin4, tile.Pin5, tile.Pin6} {
		d.counts[k] = 2
	}
	// a run with a tile in reach stays put
	for _, k := range []tile.Kind{tile.Man1, tile.Man2, tile.Man3} {
		d.counts[k] = 1
	}
	d.counts[tile.Man5] = 1
	is.Equal(d.extractIsolatedRuns(), 2)
	is.Equal(d.counts[tile.Pin5], 0)
	is.Equal(d.counts[tile.Man2], 1)
}

func TestExtractIsolatedSingles(t *testing.T) {
	is := is.New(t)
	d := &decomposer{}
	d.counts[tile.East] = 1
	d.counts[tile.South] = 2 // a pair is head material, not isolated
	d.counts[tile.Man1] = 1
	d.counts[tile.Man3] = 1 // 1m and 3m are in each other's reach
	d.counts[tile.Sou5] = 1
	d.extractIsolatedSingles()
	is.Equal(d.counts[tile.East], 0)
	is.Equal(d.counts[tile.South], 2)
	is.Equal(d.counts[tile.Man1], 1)
	is.Equal(d.counts[tile.Man3], 1)
	is.Equal(d.counts[tile.Sou5], 0)
}
