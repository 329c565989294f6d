// Package arena plays series of AI-vs-AI games, used to benchmark the
// relative strength of the strategies.
package arena

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-tictac/pkg/ai"
	"github.com/IlikeChooros/go-tictac/pkg/game"
)

type MatchResult int

const (
	Player1Win MatchResult = 1
	Player2Win MatchResult = -1
	DrawnGame  MatchResult = 0
)

// One side of the match
type Player struct {
	Name     string
	Strength ai.Strength
	Config   ai.Config
}

func NewPlayer(strength ai.Strength, cfg ai.Config) Player {
	return Player{Name: strength.String(), Strength: strength, Config: cfg}
}

// Match tallies, updated atomically by the workers
type Stats struct {
	p1Wins uint32
	p2Wins uint32
	draws  uint32
}

func (s *Stats) P1Wins() int { return int(atomic.LoadUint32(&s.p1Wins)) }
func (s *Stats) P2Wins() int { return int(atomic.LoadUint32(&s.p2Wins)) }
func (s *Stats) Draws() int  { return int(atomic.LoadUint32(&s.draws)) }

func (s *Stats) Total() int {
	return s.P1Wins() + s.P2Wins() + s.Draws()
}

// Match points: a win scores 1, a draw half for each side
func (s *Stats) P1Score() float64 {
	return float64(s.P1Wins()) + 0.5*float64(s.Draws())
}

func (s *Stats) P2Score() float64 {
	return float64(s.P2Wins()) + 0.5*float64(s.Draws())
}

// Arena plays Games games between two players, split across Workers
// goroutines. Colors are swapped every other game so neither player
// profits from moving first.
type Arena struct {
	Stats

	Player1 Player
	Player2 Player
	Variant game.Variant
	Games   int
	Workers int

	// Seed for the per-worker generators, 0 picks a random one
	Seed int64

	log zerolog.Logger
	ctx context.Context
	wg  sync.WaitGroup
}

func NewArena(variant game.Variant, p1, p2 Player) *Arena {
	return &Arena{
		Player1: p1,
		Player2: p2,
		Variant: variant,
		Games:   100,
		Workers: 2,
		log:     zerolog.Nop(),
		ctx:     context.Background(),
	}
}

func (a *Arena) WithContext(ctx context.Context) *Arena {
	a.ctx = ctx
	return a
}

func (a *Arena) WithLogger(log zerolog.Logger) *Arena {
	a.log = log
	return a
}

// Run starts the workers; Wait blocks until they finish
func (a *Arena) Run() {
	workers := max(a.Workers, 1)
	games := a.Games / workers
	rest := a.Games % workers

	seed := a.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	for id := 0; id < workers; id++ {
		n := games
		if id < rest {
			n++
		}

		a.wg.Add(1)
		go a.worker(id, n, rand.New(rand.NewSource(seed+int64(id))))
	}
}

func (a *Arena) Wait() {
	a.wg.Wait()
}

func (a *Arena) worker(id, games int, rng *rand.Rand) {
	defer a.wg.Done()

	for i := 0; i < games; i++ {
		select {
		case <-a.ctx.Done():
			return
		default:
		}

		// Even games: player 1 takes X; odd games: colors swapped
		swapped := i%2 == 1
		first, second := a.Player1, a.Player2
		if swapped {
			first, second = second, first
		}

		result, err := a.playGame(first, second, rng)
		if err != nil {
			a.log.Error().Err(err).Int("worker", id).Msg("game aborted")
			continue
		}
		if swapped {
			result = -result
		}

		switch result {
		case Player1Win:
			atomic.AddUint32(&a.p1Wins, 1)
		case Player2Win:
			atomic.AddUint32(&a.p2Wins, 1)
		default:
			atomic.AddUint32(&a.draws, 1)
		}

		a.log.Debug().
			Int("worker", id).
			Int("game", i+1).
			Int("p1_wins", a.P1Wins()).
			Int("p2_wins", a.P2Wins()).
			Int("draws", a.Draws()).
			Msg("game finished")
	}
}

// playGame runs a single game, first moving as X. The result is from
// first's perspective.
func (a *Arena) playGame(first, second Player, rng *rand.Rand) (MatchResult, error) {
	pos := game.New(a.Variant)

	for !pos.IsTerminal() {
		mover := first
		if pos.Turn() == game.MarkO {
			mover = second
		}

		move, err := ai.ChooseMove(pos, mover.Strength, mover.Config, rng)
		if err != nil {
			return DrawnGame, fmt.Errorf("%s: %w", mover.Name, err)
		}
		if err := pos.MakeLegalMove(move); err != nil {
			return DrawnGame, fmt.Errorf("%s suggested %s: %w", mover.Name, move, err)
		}
	}

	switch winner, won := pos.Outcome().Winner(); {
	case !won:
		return DrawnGame, nil
	case winner == game.MarkX:
		return Player1Win, nil
	default:
		return Player2Win, nil
	}
}
