package shanten

import "github.com/yakuman/nanikiru/tile"

// sevenPairs scores a hand against the seven-distinct-pairs form. A
// kind held three or four times still contributes exactly one
// pair-unit, so a quad is one pair short, not two pairs.
func sevenPairs(c *tile.Counts) int {
	pairs := 0
	kinds := 0
	for i := range c {
		if c[i] > 0 {
			kinds++
			if c[i] >= 2 {
				pairs++
			}
		}
	}
	tilesToWin := 7 - pairs
	if kinds < 7 {
		tilesToWin += 7 - kinds
	}
	return tilesToWin - 1
}
