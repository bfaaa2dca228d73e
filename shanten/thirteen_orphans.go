package shanten

import "github.com/yakuman/nanikiru/tile"

// thirteenOrphans scores a hand against the thirteen-orphans form: all
// thirteen terminal and honor kinds present, one of them paired. Only
// those thirteen kinds are consulted; anything else in the hand is dead
// weight.
func thirteenOrphans(c *tile.Counts) int {
	kinds := 0
	pair := 0
	for _, k := range tile.TerminalsAndHonors {
		if c[k] > 0 {
			kinds++
			if c[k] >= 2 {
				pair = 1
			}
		}
	}
	tilesToWin := 14 - kinds - pair
	return tilesToWin - 1
}
