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

package position

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessgen/internal/config"
	myLogging "github.com/frankkopp/chessgen/internal/logging"
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

func newTables() *types.LookupTables {
	return types.NewLookupTables()
}

func TestNewStartingPosition(t *testing.T) {
	testLog.Debugf("building starting position")
	p := NewStartingPosition(newTables())
	assert.Equal(t, types.White, p.SideToMove())
	assert.Equal(t, types.CastlingAny, p.CastlingRights())
	assert.Equal(t, types.SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 1, p.FullMoveNumber())
	assert.Equal(t, types.WhiteKing, p.PieceAt(types.SqE1))
	assert.Equal(t, types.BlackKing, p.PieceAt(types.SqE8))
	assert.Equal(t, types.BbZero, p.Checkers())
	assert.Empty(t, p.Validate())
}

func TestFenRoundTrip(t *testing.T) {
	tables := newTables()
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := NewPosition(fen, tables)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.ToFen())
		assert.Empty(t, p.Validate())
	}
}

func TestNewPositionRejectsMalformedFen(t *testing.T) {
	_, err := NewPosition("not a fen", newTables())
	assert.Error(t, err)
}

func TestApplyAndUndoNormalMove(t *testing.T) {
	p := NewStartingPosition(newTables())
	before := p.ToFen()
	m := types.CreateMove(types.SqE2, types.SqE4, types.Normal, types.PtNone)
	p.ApplyMove(m)
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqE2))
	assert.Equal(t, types.WhitePawn, p.PieceAt(types.SqE4))
	assert.Equal(t, types.Black, p.SideToMove())
	assert.Equal(t, types.SqE3, p.EnPassantSquare())
	assert.Equal(t, m, p.LastMove())
	p.UndoMove()
	assert.Equal(t, before, p.ToFen())
}

func TestApplyAndUndoCapture(t *testing.T) {
	tables := newTables()
	p, err := NewPosition("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", tables)
	assert.NoError(t, err)
	before := p.ToFen()
	m := types.CreateMove(types.SqE4, types.SqD5, types.Normal, types.PtNone)
	p.ApplyMove(m)
	assert.Equal(t, types.WhitePawn, p.PieceAt(types.SqD5))
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, types.SqNone, p.EnPassantSquare())
	p.UndoMove()
	assert.Equal(t, before, p.ToFen())
}

func TestApplyAndUndoEnPassant(t *testing.T) {
	tables := newTables()
	p, err := NewPosition("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", tables)
	assert.NoError(t, err)
	before := p.ToFen()
	m := types.CreateMove(types.SqE5, types.SqF6, types.EnPassant, types.PtNone)
	p.ApplyMove(m)
	assert.Equal(t, types.WhitePawn, p.PieceAt(types.SqF6))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqF5))
	p.UndoMove()
	assert.Equal(t, before, p.ToFen())
	assert.Equal(t, types.BlackPawn, p.PieceAt(types.SqF5))
}

func TestApplyAndUndoCastling(t *testing.T) {
	tables := newTables()
	p, err := NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", tables)
	assert.NoError(t, err)
	before := p.ToFen()
	m := types.CreateMove(types.SqE1, types.SqG1, types.Castling, types.PtNone)
	p.ApplyMove(m)
	assert.Equal(t, types.WhiteKing, p.PieceAt(types.SqG1))
	assert.Equal(t, types.WhiteRook, p.PieceAt(types.SqF1))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqE1))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqH1))
	assert.False(t, p.CastlingRights().Has(types.CastlingWhiteOO))
	assert.False(t, p.CastlingRights().Has(types.CastlingWhiteOOO))
	p.UndoMove()
	assert.Equal(t, before, p.ToFen())
}

func TestApplyAndUndoPromotion(t *testing.T) {
	tables := newTables()
	p, err := NewPosition("8/P6k/8/8/8/8/7p/K7 w - - 0 1", tables)
	assert.NoError(t, err)
	before := p.ToFen()
	m := types.CreateMove(types.SqA7, types.SqA8, types.Promotion, types.Queen)
	p.ApplyMove(m)
	assert.Equal(t, types.WhiteQueen, p.PieceAt(types.SqA8))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqA7))
	p.UndoMove()
	assert.Equal(t, before, p.ToFen())
}

func TestCheckersAndPinnedPieces(t *testing.T) {
	tables := newTables()
	// White king on e1, black rook on e8 pinning a potential blocker on e-file;
	// here a lone black rook gives check down the open e-file.
	p, err := NewPosition("4r3/8/8/8/8/8/8/4K3 w - - 0 1", tables)
	assert.NoError(t, err)
	assert.Equal(t, types.SqE8.Bb(), p.Checkers())

	pinned, err := NewPosition("4r3/8/8/8/8/8/4N3/4K3 w - - 0 1", tables)
	assert.NoError(t, err)
	assert.Equal(t, types.BbZero, pinned.Checkers())
	assert.Equal(t, types.SqE2.Bb(), pinned.PinnedPieces())
}

func TestIsAttacked(t *testing.T) {
	p := NewStartingPosition(newTables())
	assert.True(t, p.IsAttacked(types.SqE3, types.White))
	assert.False(t, p.IsAttacked(types.SqE5, types.White))
}

func TestCloneDropsHistory(t *testing.T) {
	p := NewStartingPosition(newTables())
	p.ApplyMove(types.CreateMove(types.SqE2, types.SqE4, types.Normal, types.PtNone))
	c := p.Clone()
	assert.Equal(t, p.ToFen(), c.ToFen())
	assert.Panics(t, func() { c.UndoMove() })
}

func TestValidateCatchesMissingKing(t *testing.T) {
	tables := newTables()
	p, err := NewPosition("8/8/8/8/8/8/8/4K3 w - - 0 1", tables)
	assert.NoError(t, err)
	errs := p.Validate()
	assert.NotEmpty(t, errs)
}
