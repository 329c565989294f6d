// Strength benchmark: pits two AI configurations against each other
// over a series of games and prints the tallies.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-tictac/pkg/ai"
	"github.com/IlikeChooros/go-tictac/pkg/arena"
	"github.com/IlikeChooros/go-tictac/pkg/game"
)

func main() {
	var (
		variantFlag = flag.String("variant", "classic", "game variant: classic or ultimate")
		p1Flag      = flag.String("p1", "medium", "player 1 strength: weak, medium or strong")
		p2Flag      = flag.String("p2", "strong", "player 2 strength: weak, medium or strong")
		games       = flag.Int("games", 100, "number of games to play")
		workers     = flag.Int("workers", 2, "parallel game workers")
		cycles      = flag.Uint("cycles", 2000, "mcts iteration budget for strong players")
		movetime    = flag.Int("movetime", 0, "mcts time budget per move in milliseconds")
		seed        = flag.Int64("seed", 0, "random seed, 0 for a random one")
		debug       = flag.Bool("debug", false, "log every finished game")
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
	s1, ok := ai.StrengthFromString(*p1Flag)
	if !ok {
		log.Fatal().Str("p1", *p1Flag).Msg("unknown strength")
	}
	s2, ok := ai.StrengthFromString(*p2Flag)
	if !ok {
		log.Fatal().Str("p2", *p2Flag).Msg("unknown strength")
	}

	cfg := ai.Config{
		Cycles:   uint32(*cycles),
		Movetime: time.Duration(*movetime) * time.Millisecond,
	}

	a := arena.NewArena(variant, arena.NewPlayer(s1, cfg), arena.NewPlayer(s2, cfg)).
		WithLogger(log)
	a.Games = *games
	a.Workers = *workers
	a.Seed = *seed

	log.Info().
		Stringer("variant", variant).
		Str("p1", s1.String()).
		Str("p2", s2.String()).
		Int("games", *games).
		Int("workers", *workers).
		Msg("starting arena")

	start := time.Now()
	a.Run()
	a.Wait()

	out := termenv.DefaultOutput()
	bold := func(s string) string { return out.String(s).Bold().String() }

	fmt.Printf("\n%s (%d games, %s)\n", bold("results"), a.Total(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("  %-8s %d wins  (%.1f points)\n", s1, a.P1Wins(), a.P1Score())
	fmt.Printf("  %-8s %d wins  (%.1f points)\n", s2, a.P2Wins(), a.P2Score())
	fmt.Printf("  draws    %d\n", a.Draws())
}
