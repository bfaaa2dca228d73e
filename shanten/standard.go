package shanten

import (
	"fmt"

	"github.com/yakuman/nanikiru/tile"
)

// The standard form wants four sets (triplets or runs) plus a pair as
// the head. Every candidate decomposition of the count table is scored
// with
//
//	shanten = 8 - 2*sets - (pairs + partials)
//
// where a partial is any two tiles one tile away from a set: an
// adjacent pair of ranks, a gapped pair (n and n+2), or a pair waiting
// to become a triplet. The search minimizes that score over all
// compatible block selections.
//
// Blocks that cannot interact with anything else - an isolated triplet,
// an isolated run, a numeric tile whose in-suit neighbors within two
// ranks are all absent - are peeled off the table up front. They admit
// exactly one reading, so removing them first shrinks the search
// without changing the optimum.

// standard runs the decomposition search and returns the minimum
// shanten over the whole space. The caller hands over ownership of the
// counts; the search mutates them in place and restores every take
// before returning from each branch.
func standard(counts tile.Counts) int {
	d := &decomposer{counts: counts}
	d.fixedSets += d.extractIsolatedTriplets()
	d.fixedSets += d.extractIsolatedRuns()
	d.extractIsolatedSingles()

	// Headless branch first, then every candidate head.
	best := d.searchSets(0)
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		if d.counts[k] >= 2 {
			d.counts[k] -= 2
			d.pairs++
			if s := d.searchSets(0); s < best {
				best = s
			}
			d.pairs--
			d.counts[k] += 2
		}
	}
	return best
}

type decomposer struct {
	counts tile.Counts

	fixedSets int // independent triplets and runs, extracted up front
	sets      int
	pairs     int
	partials  int
}

func (d *decomposer) score() int {
	block3 := d.fixedSets + d.sets
	block2 := d.pairs + d.partials
	return 8 - 2*block3 - block2
}

// searchSets enumerates every selection of triplets and runs from
// position k onward. Taking a block and skipping it are both explored:
// each take recurses and then restores, while the scan continues past
// the position regardless.
func (d *decomposer) searchSets(k tile.Kind) int {
	best := d.searchPartials(0)
	for ; k < tile.NumKinds; k++ {
		if d.counts[k] >= 3 {
			d.counts[k] -= 3
			d.sets++
			if s := d.searchSets(k); s < best {
				best = s
			}
			d.sets--
			d.counts[k] += 3
		}
		if k.HasNeighbor(2) && d.counts[k] >= 1 && d.counts[k+1] >= 1 && d.counts[k+2] >= 1 {
			d.counts[k]--
			d.counts[k+1]--
			d.counts[k+2]--
			d.sets++
			if s := d.searchSets(k); s < best {
				best = s
			}
			d.sets--
			d.counts[k]++
			d.counts[k+1]++
			d.counts[k+2]++
		}
	}
	return best
}

// searchPartials enumerates pairs and two-tile partial sequences over
// whatever the set phase left behind, scoring a leaf at every step.
func (d *decomposer) searchPartials(k tile.Kind) int {
	best := d.score()
	for ; k < tile.NumKinds; k++ {
		if d.counts[k] >= 2 {
			d.counts[k] -= 2
			d.pairs++
			if s := d.searchPartials(k); s < best {
				best = s
			}
			d.pairs--
			d.counts[k] += 2
		}
		if !k.IsNumeric() {
			continue
		}
		if k.HasNeighbor(1) && d.counts[k] >= 1 && d.counts[k+1] >= 1 {
			d.counts[k]--
			d.counts[k+1]--
			d.partials++
			if s := d.searchPartials(k); s < best {
				best = s
			}
			d.partials--
			d.counts[k]++
			d.counts[k+1]++
		}
		if k.HasNeighbor(2) && d.counts[k] >= 1 && d.counts[k+1] == 0 && d.counts[k+2] >= 1 {
			d.counts[k]--
			d.counts[k+2]--
			d.partials++
			if s := d.searchPartials(k); s < best {
				best = s
			}
			d.partials--
			d.counts[k]++
			d.counts[k+2]++
		}
	}
	return best
}

// extractIsolatedTriplets removes triplets that cannot be read any
// other way: honors with three copies, and numeric kinds with three
// copies whose in-suit neighbors within two ranks are all absent.
func (d *decomposer) extractIsolatedTriplets() int {
	n := 0
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		switch {
		case k.IsHonor():
			if d.counts[k] >= 3 {
				d.counts[k] -= 3
				n++
			}
		case k.IsNumeric():
			if d.counts[k] >= 3 && d.neighborsAbsent(k) {
				d.counts[k] -= 3
				n++
			}
		default:
			panic(fmt.Sprintf("unknown tile index %d", k))
		}
	}
	return n
}

// extractIsolatedRuns removes runs whose flanking ranks are absent, so
// no other block could borrow their tiles. Double runs (two identical
// runs, counts 2-2-2) are peeled first, then single ones.
func (d *decomposer) extractIsolatedRuns() int {
	n := 0
	for copies := 2; copies >= 1; copies-- {
		for suit := 0; suit < 3; suit++ {
			base := tile.Kind(suit * tile.RanksPerSuit)
			for off := tile.Kind(0); off <= 6; off++ {
				k := base + off
				// The run k,k+1,k+2 must have nothing within
				// reach on either side.
				if off >= 2 && d.counts[k-2] > 0 {
					continue
				}
				if off >= 1 && d.counts[k-1] > 0 {
					continue
				}
				if off <= 5 && d.counts[k+3] > 0 {
					continue
				}
				if off <= 4 && d.counts[k+4] > 0 {
					continue
				}
				if d.counts[k] == copies && d.counts[k+1] == copies && d.counts[k+2] == copies {
					d.counts[k] -= copies
					d.counts[k+1] -= copies
					d.counts[k+2] -= copies
					n += copies
				}
			}
		}
	}
	return n
}

// extractIsolatedSingles removes lone tiles with no neighbors in
// reach. They can never join a block, so they contribute nothing; the
// removal only shrinks the table the recursion has to walk.
func (d *decomposer) extractIsolatedSingles() {
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		switch {
		case k.IsHonor():
			if d.counts[k] == 1 {
				d.counts[k] = 0
			}
		case k.IsNumeric():
			if d.counts[k] == 1 && d.neighborsAbsent(k) {
				d.counts[k] = 0
			}
		default:
			panic(fmt.Sprintf("unknown tile index %d", k))
		}
	}
}

// neighborsAbsent reports whether every in-suit neighbor of k within
// two ranks has a zero count.
func (d *decomposer) neighborsAbsent(k tile.Kind) bool {
	for _, delta := range [4]int{-2, -1, 1, 2} {
		if k.HasNeighbor(delta) && d.counts[k.Neighbor(delta)] > 0 {
			return false
		}
	}
	return true
}
