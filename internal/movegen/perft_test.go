/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package movegen

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessgen/internal/config"
	myLogging "github.com/frankkopp/chessgen/internal/logging"
	"github.com/frankkopp/chessgen/internal/position"
	"github.com/frankkopp/chessgen/internal/types"
)

var testLog *logging.Logger

// make tests run in the project's root directory, where config.toml
// (if present) would live.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	testLog = myLogging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

// ///////////////////////////////////////////////////////////////
// Perft tests from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

func TestPerftStartingPosition(t *testing.T) {
	testLog.Debugf("running perft on the starting position")
	tables := types.NewLookupTables()
	p := position.NewStartingPosition(tables)
	want := []uint64{20, 400, 8902, 197281}
	for depth, expected := range want {
		assert.Equal(t, expected, Perft(p, depth+1), "depth %d", depth+1)
	}
}

func TestPerftKiwipete(t *testing.T) {
	tables := types.NewLookupTables()
	p, err := position.NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", tables)
	assert.NoError(t, err)
	want := []uint64{48, 2039, 97862}
	for depth, expected := range want {
		assert.Equal(t, expected, Perft(p, depth+1), "depth %d", depth+1)
	}
}

func TestPerftPosition3(t *testing.T) {
	tables := types.NewLookupTables()
	p, err := position.NewPosition("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", tables)
	assert.NoError(t, err)
	want := []uint64{14, 191, 2812, 43238}
	for depth, expected := range want {
		assert.Equal(t, expected, Perft(p, depth+1), "depth %d", depth+1)
	}
}

func TestPerftPosition4(t *testing.T) {
	tables := types.NewLookupTables()
	p, err := position.NewPosition("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", tables)
	assert.NoError(t, err)
	want := []uint64{6, 264, 9467}
	for depth, expected := range want {
		assert.Equal(t, expected, Perft(p, depth+1), "depth %d", depth+1)
	}
}

func TestPerftPosition4Mirror(t *testing.T) {
	// Color-mirrored FEN of position 4 must yield identical counts at every
	// depth, exercising the generator's Black-side code paths symmetrically.
	tables := types.NewLookupTables()
	p, err := position.NewPosition("r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1", tables)
	assert.NoError(t, err)
	want := []uint64{6, 264, 9467}
	for depth, expected := range want {
		assert.Equal(t, expected, Perft(p, depth+1), "depth %d", depth+1)
	}
}

func TestPerftPosition5(t *testing.T) {
	tables := types.NewLookupTables()
	p, err := position.NewPosition("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", tables)
	assert.NoError(t, err)
	want := []uint64{44, 1486, 62379}
	for depth, expected := range want {
		assert.Equal(t, expected, Perft(p, depth+1), "depth %d", depth+1)
	}
}

func TestPerftPosition6(t *testing.T) {
	tables := types.NewLookupTables()
	p, err := position.NewPosition("r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", tables)
	assert.NoError(t, err)
	want := []uint64{46, 2079, 89890}
	for depth, expected := range want {
		assert.Equal(t, expected, Perft(p, depth+1), "depth %d", depth+1)
	}
}

func TestDoubleCheckOnlyKingEscapes(t *testing.T) {
	// White king on e1 is checked simultaneously by the rook on e8 down the
	// open e-file and the knight on f3 (a knight check can never be blocked,
	// so this is unambiguously a double check regardless of other pieces).
	tables := types.NewLookupTables()
	p, err := position.NewPosition("k3r3/8/8/8/8/5n2/8/4K3 w - - 0 1", tables)
	assert.NoError(t, err)
	assert.Equal(t, 2, p.Checkers().PopCount())

	moves := GenerateMoves(p, Legal)
	assert.NotZero(t, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		assert.Equal(t, types.SqE1, moves.At(i).From(), "every legal move must be a king move")
	}
}

func TestEnPassantCaptureAppearsAndExecutes(t *testing.T) {
	tables := types.NewLookupTables()
	p, err := position.NewPosition("rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", tables)
	assert.NoError(t, err)

	moves := GenerateMoves(p, Legal)
	var found bool
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).StringUci() == "e5d6" {
			found = true
		}
	}
	assert.True(t, found, "e5d6 en-passant capture must be a legal move")

	p.ApplyMove(types.CreateMove(types.SqE5, types.SqD6, types.EnPassant, types.PtNone))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqD5))
}

func TestEnPassantSquareLifecycle(t *testing.T) {
	tables := types.NewLookupTables()
	p := position.NewStartingPosition(tables)
	p.ApplyMove(types.CreateMove(types.SqE2, types.SqE4, types.Normal, types.PtNone))
	assert.Equal(t, types.SqE3, p.EnPassantSquare())

	p.ApplyMove(types.CreateMove(types.SqB8, types.SqC6, types.Normal, types.PtNone))
	assert.Equal(t, types.SqNone, p.EnPassantSquare())
}

func TestCastlingMovesKingAndRook(t *testing.T) {
	tables := types.NewLookupTables()
	p, err := position.NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq -", tables)
	assert.NoError(t, err)
	p.ApplyMove(types.CreateMove(types.SqE1, types.SqG1, types.Castling, types.PtNone))
	assert.Equal(t, types.WhiteKing, p.PieceAt(types.SqG1))
	assert.Equal(t, types.WhiteRook, p.PieceAt(types.SqF1))
	assert.False(t, p.CastlingRights().Has(types.CastlingWhiteOO))
	assert.False(t, p.CastlingRights().Has(types.CastlingWhiteOOO))
}

func TestPromotionReplacesThePawn(t *testing.T) {
	tables := types.NewLookupTables()
	p, err := position.NewPosition("8/P6k/8/8/8/8/8/K7 w - -", tables)
	assert.NoError(t, err)
	p.ApplyMove(types.CreateMove(types.SqA7, types.SqA8, types.Promotion, types.Queen))
	assert.Equal(t, types.WhiteQueen, p.PieceAt(types.SqA8))
}

func TestParseUciMove(t *testing.T) {
	tables := types.NewLookupTables()
	p := position.NewStartingPosition(tables)
	m, err := ParseUciMove(p, "e2e4")
	assert.NoError(t, err)
	assert.Equal(t, types.SqE2, m.From())
	assert.Equal(t, types.SqE4, m.To())

	_, err = ParseUciMove(p, "e2e5")
	assert.Error(t, err)
}
