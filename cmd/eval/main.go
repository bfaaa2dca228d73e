// One-shot evaluator: compute the shanten of a single hand and print
// the per-form breakdown.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/yakuman/nanikiru/hand"
	"github.com/yakuman/nanikiru/shanten"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	handPtr := flag.String("hand", "", `the hand in mpsz notation, e.g. "123m456p789s1112z 2z"`)
	flag.Parse()

	if *handPtr == "" {
		fmt.Fprintln(os.Stderr, "must specify a hand")
		os.Exit(1)
	}
	h, err := hand.FromString(*handPtr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(h)
	for _, f := range shanten.Forms {
		res := shanten.CalcForm(h, f)
		fmt.Printf("  %-17s %d\n", res.Form.String()+":", res.Shanten)
	}
	fmt.Printf("shanten: %s\n", shanten.Calc(h))
}
