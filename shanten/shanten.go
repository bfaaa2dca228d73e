// Package shanten computes shanten numbers: the minimum number of tile
// exchanges needed to bring a hand to tenpai. 0 means the hand is
// ready; -1 means it is already complete.
//
// Three winning forms are scored independently: seven pairs, thirteen
// orphans, and the standard four-sets-plus-a-pair shape. The first two
// are closed-form counts; the standard form is an exhaustive
// decomposition search over the hand's tile-count table.
package shanten

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/yakuman/nanikiru/hand"
)

// Form identifies a winning hand shape.
type Form uint8

const (
	SevenPairs Form = iota
	ThirteenOrphans
	Standard
)

func (f Form) String() string {
	switch f {
	case SevenPairs:
		return "seven pairs"
	case ThirteenOrphans:
		return "thirteen orphans"
	case Standard:
		return "standard"
	}
	return fmt.Sprintf("form<%d>", uint8(f))
}

// Forms lists every winning form, in evaluation order.
var Forms = [3]Form{SevenPairs, ThirteenOrphans, Standard}

// Result pairs a shanten number with the form that produced it.
type Result struct {
	Shanten int
	Form    Form
}

func (r Result) String() string {
	return fmt.Sprintf("%d (%s)", r.Shanten, r.Form)
}

// Calc scores the hand against all three winning forms and returns the
// minimum. Ties go to the earliest form in evaluation order; the
// numeric value is what matters.
func Calc(h *hand.Hand) Result {
	results := []Result{
		CalcForm(h, SevenPairs),
		CalcForm(h, ThirteenOrphans),
		CalcForm(h, Standard),
	}
	return lo.MinBy(results, func(a, b Result) bool {
		return a.Shanten < b.Shanten
	})
}

// CalcForm scores the hand against a single winning form. Every call
// summarizes the hand afresh; nothing is cached between calls.
func CalcForm(h *hand.Hand, f Form) Result {
	counts := h.Counts()
	switch f {
	case SevenPairs:
		return Result{sevenPairs(&counts), SevenPairs}
	case ThirteenOrphans:
		return Result{thirteenOrphans(&counts), ThirteenOrphans}
	default:
		return Result{standard(counts), Standard}
	}
}
