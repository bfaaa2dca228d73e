package automatic

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/yakuman/nanikiru/config"
	"github.com/yakuman/nanikiru/hand"
)

func TestDeal(t *testing.T) {
	is := is.New(t)
	rng := frand.New()
	h, err := Deal(rng)
	is.NoErr(err)
	is.Equal(len(h.Concealed()), hand.ConcealedTiles)
	_, ok := h.Drawn()
	is.True(ok)

	c := h.Counts()
	is.Equal(c.Total(), 14)
	for i := range c {
		is.True(c[i] <= 4)
	}
}

func TestRun(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{Threads: 2, Seed: 42}
	stats, err := NewRunner(cfg).Run(200)
	is.NoErr(err)
	is.Equal(stats.Hands, 200)

	total := 0
	for s, n := range stats.ByShanten {
		is.True(s >= -1 && s <= 8)
		total += n
	}
	is.Equal(total, 200)

	formTotal := 0
	for _, n := range stats.ByForm {
		formTotal += n
	}
	is.Equal(formTotal, 200)
	is.True(stats.Mean() >= -1 && stats.Mean() <= 8)
}

func TestRunReproducibleWithSeed(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{Threads: 3, Seed: 7}
	first, err := NewRunner(cfg).Run(120)
	is.NoErr(err)
	second, err := NewRunner(cfg).Run(120)
	is.NoErr(err)
	is.Equal(first.ByShanten, second.ByShanten)
	is.Equal(first.ByForm, second.ByForm)
}

func TestWriteHistogram(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{Threads: 1, Seed: 1}
	stats, err := NewRunner(cfg).Run(50)
	is.NoErr(err)
	var buf bytes.Buffer
	is.NoErr(stats.WriteHistogram(&buf))
	is.True(buf.Len() > 0)
}
