// Command podds estimates Texas Hold'em win/draw/loss probabilities by
// Monte-Carlo simulation. See SPEC_FULL.md for the full interface contract.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/podds/internal/cards"
	"github.com/lox/podds/internal/diagnostics"
	"github.com/lox/podds/internal/handeval"
	"github.com/lox/podds/internal/simulator"
)

// CLI is the podds command line: `podds <players> <card1> <card2> [<card3>
// ... <card7>]`. Argument parsing and the human-readable card notation are
// this command's job, not the simulation kernel's.
type CLI struct {
	Players int      `arg:"" help:"number of players at the table (>= 2)"`
	Card1   string   `arg:"" help:"first hole card, e.g. Ah"`
	Card2   string   `arg:"" help:"second hole card, e.g. Kd"`
	Board   []string `arg:"" optional:"" help:"revealed community cards, 0 to 5 of them"`

	Games   int  `help:"total game budget" default:"200000"`
	Workers int  `help:"worker count override (0 = one per hardware thread)" default:"0"`
	Debug   bool `help:"enable debug diagnostics"`
}

var categoryOutputOrder = []int{
	handeval.Pair,
	handeval.TwoPairs,
	handeval.ThreeOfAKind,
	handeval.Straight,
	handeval.Flush,
	handeval.FullHouse,
	handeval.FourOfAKind,
	handeval.StraightFlush,
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("podds"),
		kong.Description("Texas Hold'em win/draw/loss odds by Monte-Carlo simulation"),
		kong.UsageOnError(),
	)

	logger := diagnostics.NewLogger(cli.Debug)

	known, err := parseKnownCards(cli.Card1, cli.Card2, cli.Board)
	if err != nil {
		logger.Error().Err(err).Msg("invalid card argument")
		os.Exit(1)
	}

	result, err := simulator.Run(simulator.Config{
		Players: cli.Players,
		Known:   known,
		Games:   cli.Games,
		Workers: cli.Workers,
	})
	if err != nil {
		logger.Error().Err(err).Msg("simulation failed")
		os.Exit(1)
	}

	printResult(result)
}

// parseKnownCards decodes the hole cards and board into a slice of card
// indices (hole cards first, then community cards in reveal order) and
// rejects duplicate tokens before any worker is spawned.
func parseKnownCards(card1, card2 string, board []string) ([]int, error) {
	tokens := append([]string{card1, card2}, board...)

	known := make([]int, 0, len(tokens))
	seen := make(map[int]bool, len(tokens))
	for _, tok := range tokens {
		c, err := cards.Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", tok, err)
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate card %q", tok)
		}
		seen[c] = true
		known = append(known, c)
	}
	return known, nil
}

// printResult writes the plain key:value report spec.md §6 mandates: no
// ANSI styling, no table layout, three digits after the decimal point.
func printResult(res simulator.Result) {
	fmt.Printf("cores:%d\n", res.Workers)
	fmt.Printf("games:%d\n", res.Games)
	fmt.Printf("win:%.3f\n", frac(res.Counters[handeval.Win], res.Games))
	fmt.Printf("draw:%.3f\n", frac(res.Counters[handeval.Draw], res.Games))
	for _, cat := range categoryOutputOrder {
		fmt.Printf("%s:%.3f\n", handeval.CategoryName(cat), frac(res.Counters[cat], res.Games))
	}
}

func frac(count int64, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}
