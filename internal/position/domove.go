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

import "github.com/frankkopp/chessgen/internal/types"

// castleRookFrom maps a castling destination square to the rook's
// starting square for that side, per the fixed castling geometry.
var castleRookFrom = map[types.Square]types.Square{
	types.SqG1: types.SqH1, types.SqC1: types.SqA1,
	types.SqG8: types.SqH8, types.SqC8: types.SqA8,
}
var castleRookTo = map[types.Square]types.Square{
	types.SqG1: types.SqF1, types.SqC1: types.SqD1,
	types.SqG8: types.SqF8, types.SqC8: types.SqD8,
}

// ApplyMove commits m to the board: pushes the current state onto the
// undo history, mutates piece placement and all derived bookkeeping,
// flips the side to move, and refreshes checkers/attacked_squares/
// pinned_pieces from scratch.
//
// ApplyMove does not itself validate that m is legal; it is a
// programmer error (BadMove) to apply a move whose from-square is
// empty. Moves produced by this package's own generator never violate
// that contract.
func (p *Position) ApplyMove(m types.Move) {
	from, to := m.From(), m.To()
	fromPc := p.board[from]

	if fromPc == types.PieceNone {
		panic("ApplyMove: no piece on from-square " + from.String() + " for move " + m.StringUci())
	}

	p.history = append(p.history, p.snapshotState())
	p.lastMove = m

	us := fromPc.ColorOf()
	them := us.Flip()

	switch m.MoveType() {
	case types.Normal:
		p.applyNormalMove(from, to, fromPc, us)
	case types.Promotion:
		p.applyPromotionMove(m, from, to, fromPc, us)
	case types.EnPassant:
		p.applyEnPassantMove(from, to, fromPc, us, them)
	case types.Castling:
		p.applyCastlingMove(from, to, fromPc, us)
	}

	p.sideToMove = them
	if us == types.Black {
		p.fullMoves++
	}
	p.refreshDerivedState()
}

// UndoMove pops the most recently applied move's snapshot off the
// history and restores it as-is. Calling this on an empty history is a
// programmer error.
func (p *Position) UndoMove() {
	if len(p.history) == 0 {
		panic("UndoMove: history is empty")
	}
	last := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.restoreState(last)
}

func (p *Position) applyNormalMove(from, to types.Square, fromPc types.Piece, us types.Color) {
	targetPc := p.board[to]
	if targetPc != types.PieceNone {
		p.removePiece(to)
		p.dropCastlingRightOnRookCapture(to)
		p.halfMoves = 0
	} else if fromPc.TypeOf() == types.Pawn {
		p.halfMoves = 0
	} else {
		p.halfMoves++
	}

	p.movePieceSq(from, to)

	if fromPc.TypeOf() == types.King {
		p.castling = p.castling.Remove(colorCastling(us))
	} else if fromPc.TypeOf() == types.Rook {
		p.dropCastlingRightOnRookMove(from)
	}

	p.enPassant = types.SqNone
	if fromPc.TypeOf() == types.Pawn && squareDistance(from, to) == 2 {
		p.enPassant = to.To(us.Flip().MoveDirection())
	}
}

func (p *Position) applyPromotionMove(m types.Move, from, to types.Square, fromPc types.Piece, us types.Color) {
	if p.board[to] != types.PieceNone {
		p.removePiece(to)
		p.dropCastlingRightOnRookCapture(to)
	}
	p.removePiece(from)
	p.putPiece(types.MakePiece(us, m.PromotionType()), to)
	_ = fromPc
	p.enPassant = types.SqNone
	p.halfMoves = 0
}

func (p *Position) applyEnPassantMove(from, to types.Square, fromPc types.Piece, us, them types.Color) {
	capSq := to.To(them.MoveDirection())
	p.removePiece(capSq)
	p.movePieceSq(from, to)
	_ = fromPc
	p.enPassant = types.SqNone
	p.halfMoves = 0
}

func (p *Position) applyCastlingMove(from, to types.Square, fromPc types.Piece, us types.Color) {
	p.movePieceSq(from, to)
	rookFrom, rookTo := castleRookFrom[to], castleRookTo[to]
	p.movePieceSq(rookFrom, rookTo)
	p.castling = p.castling.Remove(colorCastling(us))
	p.enPassant = types.SqNone
	p.halfMoves++
	_ = fromPc
}

func colorCastling(c types.Color) types.CastlingRights {
	if c == types.White {
		return types.CastlingWhite
	}
	return types.CastlingBlack
}

// dropCastlingRightOnRookCapture clears the castling right tied to a
// rook's home square if a piece was just captured there.
func (p *Position) dropCastlingRightOnRookCapture(sq types.Square) {
	switch sq {
	case types.SqA1:
		p.castling = p.castling.Remove(types.CastlingWhiteOOO)
	case types.SqH1:
		p.castling = p.castling.Remove(types.CastlingWhiteOO)
	case types.SqA8:
		p.castling = p.castling.Remove(types.CastlingBlackOOO)
	case types.SqH8:
		p.castling = p.castling.Remove(types.CastlingBlackOO)
	}
}

// dropCastlingRightOnRookMove clears the castling right tied to a
// rook's home square if the rook itself has just moved away from it.
func (p *Position) dropCastlingRightOnRookMove(from types.Square) {
	p.dropCastlingRightOnRookCapture(from)
}

func squareDistance(a, b types.Square) int {
	fd := int(a.FileOf()) - int(b.FileOf())
	rd := int(a.RankOf()) - int(b.RankOf())
	if fd < 0 {
		fd = -fd
	}
	if rd < 0 {
		rd = -rd
	}
	if fd > rd {
		return fd
	}
	return rd
}

func (p *Position) snapshotState() snapshot {
	return snapshot{
		pieceBb:         p.pieceBb,
		board:           p.board,
		occBb:           p.occBb,
		occAll:          p.occAll,
		sideToMove:      p.sideToMove,
		castling:        p.castling,
		enPassant:       p.enPassant,
		halfMoves:       p.halfMoves,
		fullMoves:       p.fullMoves,
		checkers:        p.checkers,
		attackedSquares: p.attackedSquares,
		pinnedPieces:    p.pinnedPieces,
		kingSquare:      p.kingSquare,
		lastMove:        p.lastMove,
	}
}

func (p *Position) restoreState(s snapshot) {
	p.pieceBb = s.pieceBb
	p.board = s.board
	p.occBb = s.occBb
	p.occAll = s.occAll
	p.sideToMove = s.sideToMove
	p.castling = s.castling
	p.enPassant = s.enPassant
	p.halfMoves = s.halfMoves
	p.fullMoves = s.fullMoves
	p.checkers = s.checkers
	p.attackedSquares = s.attackedSquares
	p.pinnedPieces = s.pinnedPieces
	p.kingSquare = s.kingSquare
	p.lastMove = s.lastMove
}
