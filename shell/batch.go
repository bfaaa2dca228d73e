package shell

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yakuman/nanikiru/hand"
	"github.com/yakuman/nanikiru/shanten"
)

// A batch file is a YAML collection of hands:
//
//	hands:
//	  - hand: 1122m3344p5566s1z 1z
//	    note: chiitoi win
type batchFile struct {
	Hands []batchEntry `yaml:"hands"`
}

type batchEntry struct {
	Hand string `yaml:"hand"`
	Note string `yaml:"note,omitempty"`
}

func parseBatchFile(data []byte) (*batchFile, error) {
	bf := &batchFile{}
	if err := yaml.Unmarshal(data, bf); err != nil {
		return nil, err
	}
	if len(bf.Hands) == 0 {
		return nil, errors.New("batch file has no hands")
	}
	return bf, nil
}

func (sc *ShellController) batch(args []string) error {
	if len(args) != 1 {
		return errors.New("batch needs a file name")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	bf, err := parseBatchFile(data)
	if err != nil {
		return err
	}
	for _, entry := range bf.Hands {
		h, err := hand.FromString(entry.Hand)
		if err != nil {
			showMessage(fmt.Sprintf("%-28s  error: %v", entry.Hand, err), sc.l.Stderr())
			continue
		}
		line := fmt.Sprintf("%-28s  shanten: %s", sc.render(h), shanten.Calc(h))
		if entry.Note != "" {
			line += "  # " + entry.Note
		}
		showMessage(line, sc.l.Stderr())
	}
	return nil
}
