// Package automatic deals random hands and evaluates their shanten in
// bulk. Each hand evaluation is independent of every other, so the
// work is spread across a fixed pool of workers.
package automatic

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/yakuman/nanikiru/config"
	"github.com/yakuman/nanikiru/hand"
	"github.com/yakuman/nanikiru/shanten"
	"github.com/yakuman/nanikiru/tile"
)

// wallSize is the number of physical tiles: four copies of each kind.
const wallSize = 4 * tile.NumKinds

// Runner is the master struct for bulk random-hand evaluation.
type Runner struct {
	config *config.Config
}

// NewRunner instantiates a runner.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Stats aggregates the outcome of one bulk run.
type Stats struct {
	Hands     int
	Elapsed   time.Duration
	ByShanten map[int]int
	ByForm    map[shanten.Form]int

	values []float64
}

// Mean returns the average shanten across the run.
func (s *Stats) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return lo.Sum(s.values) / float64(len(s.values))
}

// WriteHistogram prints a terminal histogram of the shanten
// distribution.
func (s *Stats) WriteHistogram(w io.Writer) error {
	hist := histogram.Hist(10, s.values)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

// Run deals and evaluates numHands random hands across the configured
// number of worker threads and merges the per-worker tallies.
func (r *Runner) Run(numHands int) (*Stats, error) {
	threads := r.config.Threads
	if threads < 1 {
		threads = 1
	}
	tstart := time.Now()

	// Fixed shares rather than a shared work counter: each worker owns
	// its own RNG stream, so a seeded run reproduces exactly for a
	// given thread count.
	perWorker := make([][]shanten.Result, threads)
	g := errgroup.Group{}
	for t := 0; t < threads; t++ {
		t := t
		share := numHands / threads
		if t < numHands%threads {
			share++
		}
		g.Go(func() error {
			rng := r.newRNG(t)
			local := make([]shanten.Result, 0, share)
			for i := 0; i < share; i++ {
				h, err := Deal(rng)
				if err != nil {
					return err
				}
				local = append(local, shanten.Calc(h))
			}
			perWorker[t] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	elapsed := time.Since(tstart)

	all := lo.Flatten(perWorker)
	stats := &Stats{
		Hands:   len(all),
		Elapsed: elapsed,
		ByShanten: lo.CountValuesBy(all, func(res shanten.Result) int {
			return res.Shanten
		}),
		ByForm: lo.CountValuesBy(all, func(res shanten.Result) shanten.Form {
			return res.Form
		}),
		values: lo.Map(all, func(res shanten.Result, _ int) float64 {
			return float64(res.Shanten)
		}),
	}
	hps := float64(stats.Hands) / elapsed.Seconds()
	log.Info().Msgf("time taken: %v, hands/s: %f", elapsed.Seconds(), hps)
	return stats, nil
}

// newRNG returns the RNG for one worker. A zero configured seed means
// every run is fresh; otherwise each worker gets a stream derived from
// the seed and its index, so runs are reproducible.
func (r *Runner) newRNG(worker int) *frand.RNG {
	if r.config.Seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(r.config.Seed))
	binary.LittleEndian.PutUint64(key[8:16], uint64(worker)+1)
	return frand.NewCustom(key[:], 1024, 12)
}

// Deal shuffles a full 136-tile wall and takes the first fourteen
// tiles: thirteen concealed plus one drawn.
func Deal(rng *frand.RNG) (*hand.Hand, error) {
	wall := make([]tile.Kind, 0, wallSize)
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		for c := 0; c < 4; c++ {
			wall = append(wall, k)
		}
	}
	rng.Shuffle(len(wall), func(i, j int) {
		wall[i], wall[j] = wall[j], wall[i]
	})
	return hand.NewWithDrawn(wall[:hand.ConcealedTiles], wall[hand.ConcealedTiles])
}
