// Package shell is the interactive analyzer: a readline loop that
// parses hands, reports shanten per winning form, deals random hands,
// and runs bulk evaluations.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/yakuman/nanikiru/automatic"
	"github.com/yakuman/nanikiru/config"
	"github.com/yakuman/nanikiru/hand"
	"github.com/yakuman/nanikiru/shanten"
)

var (
	errNoData            = errors.New("no data in command")
	errWrongOptionSyntax = errors.New("wrong option syntax")
	errQuit              = errors.New("quit")
)

// ShellController owns the readline instance and the session state.
type ShellController struct {
	l      *readline.Instance
	config *config.Config
	rng    *frand.RNG
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "analyze <hand> - compute shanten for a hand such as 123m456p789s1112z 2z\n")
	io.WriteString(w, "forms <hand> - show the breakdown for every winning form\n")
	io.WriteString(w, "random [n] - deal and analyze n random hands; n defaults to 1\n")
	io.WriteString(w, "sim <n> [-threads t] - evaluate n random hands and print the shanten distribution\n")
	io.WriteString(w, "batch <file> - analyze every hand in a YAML collection\n")
	io.WriteString(w, "style letters|emoji - set hand rendering style\n")
	io.WriteString(w, "exit - quit\n")
}

// NewShellController creates the controller and its readline instance.
func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mnanikiru>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, config: cfg, rng: frand.New()}
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	// handle options
	lastWasOption := false
	lastOption := ""
	for _, f := range fields[1:] {
		if strings.HasPrefix(f, "-") {
			lastWasOption = true
			lastOption = f[1:]
			continue
		}
		if lastWasOption {
			options[lastOption] = f
			lastWasOption = false
		} else {
			args = append(args, f)
		}
	}

	if lastWasOption {
		// all options need a value.
		return nil, errWrongOptionSyntax
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

// Loop reads and executes commands until EOF or an exit command, then
// signals the main goroutine to shut down.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		err = sc.Execute(line)
		if err == errQuit {
			break
		}
		if err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
	sig <- syscall.SIGINT
}

// Execute dispatches a single command line.
func (sc *ShellController) Execute(line string) error {
	cmd, err := extractFields(line)
	if err != nil {
		return err
	}
	switch cmd.cmd {
	case "analyze", "a":
		return sc.analyze(cmd.args)
	case "forms":
		return sc.forms(cmd.args)
	case "random":
		return sc.random(cmd.args)
	case "sim":
		return sc.sim(cmd)
	case "batch":
		return sc.batch(cmd.args)
	case "style":
		return sc.style(cmd.args)
	case "help":
		usage(sc.l.Stderr())
		return nil
	case "exit", "quit":
		return errQuit
	default:
		return fmt.Errorf("command %q not found", cmd.cmd)
	}
}

func (sc *ShellController) render(h *hand.Hand) string {
	if sc.config.TileStyle == "emoji" {
		return h.Emoji()
	}
	return h.String()
}

func (sc *ShellController) analyze(args []string) error {
	h, err := parseHandArgs(args)
	if err != nil {
		return err
	}
	res := shanten.Calc(h)
	showMessage(fmt.Sprintf("%s  shanten: %s", sc.render(h), res), sc.l.Stderr())
	return nil
}

func (sc *ShellController) forms(args []string) error {
	h, err := parseHandArgs(args)
	if err != nil {
		return err
	}
	showMessage(sc.render(h), sc.l.Stderr())
	for _, f := range shanten.Forms {
		res := shanten.CalcForm(h, f)
		showMessage(fmt.Sprintf("  %-17s %d", res.Form.String()+":", res.Shanten), sc.l.Stderr())
	}
	return nil
}

func (sc *ShellController) random(args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		h, err := automatic.Deal(sc.rng)
		if err != nil {
			return err
		}
		res := shanten.Calc(h)
		showMessage(fmt.Sprintf("%s  shanten: %s", sc.render(h), res), sc.l.Stderr())
	}
	return nil
}

func (sc *ShellController) sim(cmd *shellcmd) error {
	if len(cmd.args) == 0 {
		return errors.New("sim needs a number of hands")
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return err
	}
	cfg := *sc.config
	if t, ok := cmd.options["threads"]; ok {
		cfg.Threads, err = strconv.Atoi(t)
		if err != nil {
			return err
		}
	}
	runner := automatic.NewRunner(&cfg)
	stats, err := runner.Run(n)
	if err != nil {
		return err
	}
	showMessage(fmt.Sprintf("%d hands in %v, mean shanten %.3f",
		stats.Hands, stats.Elapsed, stats.Mean()), sc.l.Stderr())
	return stats.WriteHistogram(sc.l.Stderr())
}

func (sc *ShellController) style(args []string) error {
	if len(args) != 1 || (args[0] != "letters" && args[0] != "emoji") {
		return errors.New("style must be letters or emoji")
	}
	sc.config.TileStyle = args[0]
	return nil
}

// parseHandArgs reassembles a hand that readline split on the space
// before the drawn tile.
func parseHandArgs(args []string) (*hand.Hand, error) {
	if len(args) == 0 {
		return nil, errors.New("need a hand, e.g. 123m456p789s1112z 2z")
	}
	return hand.FromString(strings.Join(args, " "))
}
