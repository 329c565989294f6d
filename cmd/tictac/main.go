// Interactive tic-tac-toe against the AI, classic or ultimate rules.
//
// Moves are entered as a cell index 0-8 in classic mode, or as
// "<board> <cell>" in ultimate mode.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-tictac/pkg/ai"
	"github.com/IlikeChooros/go-tictac/pkg/game"
	"github.com/IlikeChooros/go-tictac/pkg/play"
)

func main() {
	var (
		variantFlag  = flag.String("variant", "classic", "game variant: classic or ultimate")
		strengthFlag = flag.String("ai", "strong", "ai opponent: weak, medium or strong")
		cycles       = flag.Uint("cycles", 10000, "mcts iteration budget")
		movetime     = flag.Int("movetime", 0, "mcts time budget in milliseconds, 0 to rely on cycles")
		exploration  = flag.Float64("exploration", 0, "ucb1 exploration constant, 0 for the default")
		seed         = flag.Int64("seed", 0, "random seed, 0 for a time-based one")
		humanMark    = flag.String("mark", "x", "mark the human plays: x or o")
		notation     = flag.String("position", "startpos", "starting position notation")
		debug        = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *debug {
		log = log.Level(zerolog.DebugLevel)
	}

	variant, ok := game.VariantFromString(*variantFlag)
	if !ok {
		log.Fatal().Str("variant", *variantFlag).Msg("unknown variant")
	}
	strength, ok := ai.StrengthFromString(*strengthFlag)
	if !ok {
		log.Fatal().Str("ai", *strengthFlag).Msg("unknown ai strength")
	}
	human := game.MarkFromRune(rune((*humanMark)[0]))
	if human == game.MarkNone {
		log.Fatal().Str("mark", *humanMark).Msg("mark must be x or o")
	}

	pos, err := game.FromNotation(variant, *notation)
	if err != nil {
		log.Fatal().Err(err).Msg("bad starting position")
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	controller := play.NewController(variant,
		play.WithPosition(pos),
		play.WithConfig(ai.Config{
			Cycles:      uint32(*cycles),
			Movetime:    time.Duration(*movetime) * time.Millisecond,
			Exploration: *exploration,
		}),
		play.WithRand(rand.New(rand.NewSource(rngSeed))),
		play.WithLogger(log),
	)

	reader := bufio.NewReader(os.Stdin)
	for !controller.Outcome().Terminal() {
		render(controller.Position())

		if controller.Turn() == human {
			move, ok := readMove(reader, variant)
			if !ok {
				fmt.Println("bye")
				return
			}
			if err := controller.Apply(move); err != nil {
				var illegal *game.IllegalMoveError
				if errors.As(err, &illegal) {
					fmt.Printf("%s, try again\n", illegal)
					continue
				}
				log.Fatal().Err(err).Msg("apply failed")
			}
			continue
		}

		move, err := controller.AIMove(strength)
		if err != nil {
			log.Fatal().Err(err).Msg("ai failed to move")
		}
		fmt.Printf("%s plays %s\n", strength, move)
	}

	render(controller.Position())
	printOutcome(controller.Outcome(), human)
}

// readMove prompts until the input parses as a move; false on EOF
func readMove(reader *bufio.Reader, variant game.Variant) (game.Move, bool) {
	for {
		if variant == game.VariantUltimate {
			fmt.Print("your move (<board> <cell>, each 0-8): ")
		} else {
			fmt.Print("your move (0-8): ")
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			return game.MoveNone, false
		}

		fields := strings.Fields(line)
		switch {
		case variant == game.VariantClassic && len(fields) == 1:
			if move := game.MoveFromString(fields[0]); move != game.MoveNone {
				return move, true
			}
		case variant == game.VariantUltimate && len(fields) == 2:
			if move := game.MoveFromString("b" + fields[0] + "c" + fields[1]); move != game.MoveNone {
				return move, true
			}
		}

		fmt.Println("could not parse that, expected cell indexes 0-8")
	}
}

func printOutcome(outcome game.Outcome, human game.Mark) {
	winner, won := outcome.Winner()
	switch {
	case !won:
		fmt.Println(styleDraw("draw"))
	case winner == human:
		fmt.Println(styleWin("you win"))
	default:
		fmt.Println(styleLoss("you lose"))
	}
}
