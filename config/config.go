package config

import (
	"runtime"

	"github.com/namsral/flag"
)

type Config struct {
	Threads   int
	Seed      int64
	TileStyle string
	Debug     bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("nanikiru", flag.ContinueOnError)
	fs.IntVar(&c.Threads, "threads", runtime.NumCPU(), "worker threads for batch hand evaluation")
	fs.Int64Var(&c.Seed, "seed", 0, "seed for random deals; 0 picks a fresh one")
	fs.StringVar(&c.TileStyle, "tile-style", "letters", "hand rendering style: letters or emoji")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	err := fs.Parse(args)
	return err
}
