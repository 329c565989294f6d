package ai

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-tictac/pkg/game"
	"github.com/IlikeChooros/go-tictac/pkg/mcts"
)

func TestStrengthFromString(t *testing.T) {
	for _, want := range []Strength{Weak, Medium, Strong} {
		got, ok := StrengthFromString(want.String())
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := StrengthFromString("grandmaster")
	require.False(t, ok)
}

func TestWeakPlaysLegalMoves(t *testing.T) {
	for _, variant := range []game.Variant{game.VariantClassic, game.VariantUltimate} {
		pos := game.New(variant)
		rng := rand.New(rand.NewSource(5))

		for !pos.IsTerminal() {
			move, err := ChooseMove(pos, Weak, Config{}, rng)
			require.NoError(t, err)
			require.True(t, pos.IsLegal(move), "weak picked illegal move %s", move)
			require.NoError(t, pos.MakeLegalMove(move))
		}
	}
}

func TestWeakIsDeterministicWithSeededRand(t *testing.T) {
	pos := game.NewClassic()

	first, err := ChooseMove(pos, Weak, Config{}, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	second, err := ChooseMove(pos, Weak, Config{}, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestMediumTakesTheWin(t *testing.T) {
	// x completes the top row instead of anything else
	pos, err := game.ClassicFromNotation("xx1oo4 x")
	require.NoError(t, err)

	move, err := ChooseMove(pos, Medium, Config{}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, game.NewMove(0, 2), move)
}

func TestMediumBlocksTheThreat(t *testing.T) {
	// o has no win of its own, x threatens cell 2
	pos, err := game.ClassicFromNotation("xx1o5 o")
	require.NoError(t, err)

	move, err := ChooseMove(pos, Medium, Config{}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, game.NewMove(0, 2), move)
}

func TestMediumPrefersWinOverBlock(t *testing.T) {
	// Both sides threaten a row; o to move must finish its own
	pos, err := game.ClassicFromNotation("xx1oo4 o")
	require.NoError(t, err)

	move, err := ChooseMove(pos, Medium, Config{}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, game.NewMove(0, 5), move)
}

func TestMediumUltimateRespectsForcedBoard(t *testing.T) {
	pos := game.NewUltimate()
	require.NoError(t, pos.MakeLegalMove(game.NewMove(2, 4)))

	move, err := ChooseMove(pos, Medium, Config{}, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	require.True(t, pos.IsLegal(move))
	require.Equal(t, 4, move.Board())
}

func TestStrongFindsTheWin(t *testing.T) {
	pos, err := game.ClassicFromNotation("xx1oo4 x")
	require.NoError(t, err)

	move, err := ChooseMove(pos, Strong, Config{Cycles: 2000}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.Equal(t, game.NewMove(0, 2), move)
}

func TestStrongBlocksTheThreat(t *testing.T) {
	pos, err := game.ClassicFromNotation("xx1o5 o")
	require.NoError(t, err)

	move, err := ChooseMove(pos, Strong, Config{Cycles: 4000}, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	require.Equal(t, game.NewMove(0, 2), move)
}

func TestStrongPlaysLegalUltimateMoves(t *testing.T) {
	pos := game.NewUltimate()
	rng := rand.New(rand.NewSource(6))

	// A handful of moves from the start, each must respect the rules
	for i := 0; i < 4; i++ {
		move, err := ChooseMove(pos, Strong, Config{Cycles: 300}, rng)
		require.NoError(t, err)
		require.True(t, pos.IsLegal(move), "strong picked illegal move %s", move)
		require.NoError(t, pos.MakeLegalMove(move))
	}
}

func TestStrongDoesNotMutateThePosition(t *testing.T) {
	pos, err := game.ClassicFromNotation("xx1oo4 x")
	require.NoError(t, err)
	before := pos.Notation()

	_, err = ChooseMove(pos, Strong, Config{Cycles: 500}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, before, pos.Notation())
	require.Equal(t, 0, pos.MoveCount())
}

func TestStrongSubMillisecondMovetime(t *testing.T) {
	// A positive budget below the timer's millisecond resolution must
	// still bound the search instead of disabling the time limit
	pos := game.NewClassic()

	start := time.Now()
	move, err := ChooseMove(pos, Strong,
		Config{Movetime: 500 * time.Microsecond}, rand.New(rand.NewSource(11)))
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.True(t, pos.IsLegal(move))
	require.Less(t, elapsed, time.Second)
}

func TestStrongWithoutBudget(t *testing.T) {
	pos := game.NewClassic()

	_, err := ChooseMove(pos, Strong, Config{}, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrNoBudget)
}

func TestChooseMoveOnTerminalPosition(t *testing.T) {
	pos, err := game.ClassicFromNotation("xoxxoooxx x")
	require.NoError(t, err)
	require.True(t, pos.IsTerminal())

	for _, strength := range []Strength{Weak, Medium, Strong} {
		_, err := ChooseMove(pos, strength, Config{Cycles: 100}, rand.New(rand.NewSource(1)))
		require.ErrorIs(t, err, ErrNoMoves, "strength %s", strength)
	}
}

func TestChooseMoveUnknownStrength(t *testing.T) {
	_, err := ChooseMove(game.NewClassic(), Strength(9), Config{}, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}

func TestNewSearchReusableTree(t *testing.T) {
	pos := game.NewClassic()
	tree := NewSearch(pos, rand.New(rand.NewSource(8)))
	tree.SetLimits(mcts.DefaultLimits().SetCycles(500))

	tree.Search()
	move, ok := tree.RootMove()
	require.True(t, ok)
	require.True(t, pos.IsLegal(move))

	// Re-rooting keeps the subtree and the next search continues from it
	require.True(t, tree.MakeMove(move))
	require.NoError(t, pos.MakeLegalMove(move))
}
