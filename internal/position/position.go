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

// Package position implements the board representation, FEN parsing and
// serialization, move application and reversal, and the derived-state
// (checkers / attacked squares / pinned pieces) bookkeeping described for
// the core's Position component.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/chessgen/internal/assert"
	"github.com/frankkopp/chessgen/internal/logging"
	"github.com/frankkopp/chessgen/internal/types"
	"github.com/frankkopp/chessgen/internal/util"
)

var log = logging.GetLog()

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// snapshot holds everything apply_move needs to restore a prior state
// byte-for-byte; undo_move pops one off the history stack and restores it.
type snapshot struct {
	pieceBb         [12]types.Bitboard
	board           [64]types.Piece
	occBb           [2]types.Bitboard
	occAll          types.Bitboard
	sideToMove      types.Color
	castling        types.CastlingRights
	enPassant       types.Square
	halfMoves       int
	fullMoves       int
	checkers        types.Bitboard
	attackedSquares types.Bitboard
	pinnedPieces    types.Bitboard
	kingSquare      [2]types.Square
	lastMove        types.Move
}

// Position is the mutable board state: piece placement, side to move,
// castling rights, en-passant target, move counters, and the
// checkers/attacked_squares/pinned_pieces sets cached from the last
// apply_move or FEN parse. It holds a read-only reference to the
// LookupTables it was built with; that reference must outlive the
// Position.
type Position struct {
	lookup *types.LookupTables

	pieceBb [12]types.Bitboard
	board   [64]types.Piece
	occBb   [2]types.Bitboard
	occAll  types.Bitboard

	sideToMove types.Color
	castling   types.CastlingRights
	enPassant  types.Square
	halfMoves  int
	fullMoves  int

	checkers        types.Bitboard
	attackedSquares types.Bitboard
	pinnedPieces    types.Bitboard
	kingSquare      [2]types.Square

	lastMove types.Move
	history  []snapshot
}

// pieceIndex maps a (Color, PieceType) pair onto the dense 0..11 range
// used to index pieceBb.
func pieceIndex(c types.Color, pt types.PieceType) int {
	return int(c)*6 + int(pt) - int(types.King)
}

// NewStartingPosition returns a Position set up at the standard chess
// starting position, using tables for attack lookups.
func NewStartingPosition(tables *types.LookupTables) *Position {
	p, err := NewPosition(StartFen, tables)
	if err != nil {
		panic("start FEN must always parse: " + err.Error())
	}
	return p
}

// NewPosition parses fen and builds a Position that uses tables for
// attack lookups. Returns a ParseError if fen is malformed.
func NewPosition(fen string, tables *types.LookupTables) (*Position, error) {
	p := &Position{lookup: tables, enPassant: types.SqNone}
	if err := p.setupFromFen(fen); err != nil {
		log.Errorf("fen %q is not valid: %s", fen, err)
		return nil, err
	}
	p.refreshDerivedState()
	return p, nil
}

// Clone returns an independent deep copy of p with an empty history, so
// moves applied to the copy never touch p's undo stack.
func (p *Position) Clone() *Position {
	c := *p
	c.history = nil
	return &c
}

// Lookup returns the LookupTables this position was built with.
func (p *Position) Lookup() *types.LookupTables { return p.lookup }

// SideToMove returns the color to move next.
func (p *Position) SideToMove() types.Color { return p.sideToMove }

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() types.CastlingRights { return p.castling }

// EnPassantSquare returns the en-passant target square, or SqNone if none.
func (p *Position) EnPassantSquare() types.Square { return p.enPassant }

// HalfMoveClock returns the half-move counter (plies since the last
// capture or pawn move). Tracked but never interpreted by this package.
func (p *Position) HalfMoveClock() int { return p.halfMoves }

// FullMoveNumber returns the full-move counter. Tracked but never
// interpreted by this package.
func (p *Position) FullMoveNumber() int { return p.fullMoves }

// Checkers returns the bitboard of enemy pieces currently giving check
// to the side to move's king.
func (p *Position) Checkers() types.Bitboard { return p.checkers }

// AttackedSquares returns every square the enemy attacks with the side
// to move's king removed from the board.
func (p *Position) AttackedSquares() types.Bitboard { return p.attackedSquares }

// PinnedPieces returns the side to move's pieces absolutely pinned
// against their own king.
func (p *Position) PinnedPieces() types.Bitboard { return p.pinnedPieces }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c types.Color) types.Square { return p.kingSquare[c] }

// PieceAt returns the piece on sq, or PieceNone if sq is empty.
func (p *Position) PieceAt(sq types.Square) types.Piece { return p.board[sq] }

// PiecesBb returns the bitboard of color c's pieces of kind pt.
func (p *Position) PiecesBb(c types.Color, pt types.PieceType) types.Bitboard {
	return p.pieceBb[pieceIndex(c, pt)]
}

// OccupiedBy returns the occupancy bitboard for color c.
func (p *Position) OccupiedBy(c types.Color) types.Bitboard { return p.occBb[c] }

// OccupiedAll returns the bitboard of every occupied square.
func (p *Position) OccupiedAll() types.Bitboard { return p.occAll }

// LastMove returns the most recently applied move, or MoveNone if the
// position has no history.
func (p *Position) LastMove() types.Move { return p.lastMove }

// Pieces returns every (Piece, Square) pair currently on the board.
func (p *Position) Pieces() []PieceAtSquare {
	var out []PieceAtSquare
	for sq := types.SqA1; sq < types.SqNone; sq++ {
		if pc := p.board[sq]; pc != types.PieceNone {
			out = append(out, PieceAtSquare{Piece: pc, Square: sq})
		}
	}
	return out
}

// PieceAtSquare pairs a piece with the square it occupies.
type PieceAtSquare struct {
	Piece  types.Piece
	Square types.Square
}

func (p *Position) putPiece(pc types.Piece, sq types.Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == types.PieceNone, "putPiece: square %s already occupied", sq)
	}
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = pc
	p.pieceBb[pieceIndex(c, pt)] = p.pieceBb[pieceIndex(c, pt)].PushSquare(sq)
	p.occBb[c] = p.occBb[c].PushSquare(sq)
	p.occAll = p.occAll.PushSquare(sq)
	if pt == types.King {
		p.kingSquare[c] = sq
	}
}

func (p *Position) removePiece(sq types.Square) types.Piece {
	pc := p.board[sq]
	if assert.DEBUG {
		assert.Assert(pc != types.PieceNone, "removePiece: square %s already empty", sq)
	}
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = types.PieceNone
	p.pieceBb[pieceIndex(c, pt)] = p.pieceBb[pieceIndex(c, pt)].PopSquare(sq)
	p.occBb[c] = p.occBb[c].PopSquare(sq)
	p.occAll = p.occAll.PopSquare(sq)
	return pc
}

func (p *Position) movePieceSq(from, to types.Square) {
	p.putPiece(p.removePiece(from), to)
}

// String renders the FEN followed by an 8x8 board diagram, in the
// teacher's style of combining a machine-readable and human-readable view.
func (p *Position) String() string {
	var s strings.Builder
	s.WriteString(p.ToFen())
	s.WriteString("\n")
	s.WriteString(p.StringBoard())
	return s.String()
}

// StringBoard renders the board as an 8x8 grid, rank 8 first.
func (p *Position) StringBoard() string {
	var s strings.Builder
	s.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := types.Rank8; ; r-- {
		for f := types.FileA; f <= types.FileH; f++ {
			s.WriteString("| ")
			s.WriteString(p.board[types.SquareOf(f, r)].Char())
			s.WriteString(" ")
		}
		s.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == types.Rank1 {
			break
		}
	}
	return s.String()
}

// ToFen serializes the position back to FEN. Round-trips any position
// the parser accepted, including half/full-move fields being 0 if the
// input omitted them.
func (p *Position) ToFen() string {
	var fen strings.Builder
	for r := types.Rank8; ; r-- {
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			pc := p.board[types.SquareOf(f, r)]
			if pc == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteString(pc.String())
		}
		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}
		if r > types.Rank1 {
			fen.WriteString("/")
		}
		if r == types.Rank1 {
			break
		}
	}
	fen.WriteString(" ")
	fen.WriteString(p.sideToMove.String())
	fen.WriteString(" ")
	fen.WriteString(p.castling.String())
	fen.WriteString(" ")
	fen.WriteString(p.enPassant.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoves))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.fullMoves))
	return fen.String()
}

// setupFromFen parses fen into p's fields. p is assumed freshly zeroed.
func (p *Position) setupFromFen(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return &ParseError{Msg: "fen must not be empty"}
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return err
	}

	p.sideToMove = types.White
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.sideToMove = types.White
		case "b":
			p.sideToMove = types.Black
		default:
			return &ParseError{Msg: fmt.Sprintf("invalid active color: %q", fields[1])}
		}
	}

	p.castling = types.CastlingNone
	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castling = p.castling.Add(types.CastlingWhiteOO)
			case 'Q':
				p.castling = p.castling.Add(types.CastlingWhiteOOO)
			case 'k':
				p.castling = p.castling.Add(types.CastlingBlackOO)
			case 'q':
				p.castling = p.castling.Add(types.CastlingBlackOOO)
			default:
				return &ParseError{Msg: fmt.Sprintf("invalid castling rights: %q", fields[2])}
			}
		}
	}

	p.enPassant = types.SqNone
	if len(fields) >= 4 && fields[3] != "-" {
		sq := types.MakeSquare(fields[3])
		if sq == types.SqNone {
			return &ParseError{Msg: fmt.Sprintf("invalid en passant square: %q", fields[3])}
		}
		p.enPassant = sq
	}

	p.halfMoves = 0
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil && n >= 0 {
			p.halfMoves = n
		}
	}

	p.fullMoves = 0
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n >= 0 {
			p.fullMoves = n
		}
	}

	p.lastMove = types.MoveNone
	return nil
}

func (p *Position) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &ParseError{Msg: fmt.Sprintf("fen piece placement must have 8 ranks, got %d", len(ranks))}
	}
	for i, rankStr := range ranks {
		r := types.Rank8 - types.Rank(i)
		f := types.FileA
		for _, c := range rankStr {
			if util.IsDigit(byte(c)) && c != '0' {
				f += types.File(c - '0')
				continue
			}
			pc := types.PieceFromChar(string(c))
			if pc == types.PieceNone || !f.IsValid() {
				return &ParseError{Msg: fmt.Sprintf("invalid piece character %q in rank %q", c, rankStr)}
			}
			p.putPiece(pc, types.SquareOf(f, r))
			f++
		}
		if f != types.FileNone {
			return &ParseError{Msg: fmt.Sprintf("rank %q does not sum to 8 files", rankStr)}
		}
	}
	return nil
}

// ParseError reports a malformed FEN or move string.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "parse error: " + e.Msg }
