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
	"fmt"

	"github.com/frankkopp/chessgen/internal/types"
)

// Validate runs a non-fatal structural integrity check and returns every
// violation found; a nil/empty result means the position is internally
// consistent. Intended for use right after FEN parsing and from tests,
// not on the hot apply_move/generate_moves path.
func (p *Position) Validate() []error {
	var errs []error
	report := func(format string, a ...interface{}) {
		errs = append(errs, fmt.Errorf(format, a...))
	}

	for _, c := range [2]types.Color{types.White, types.Black} {
		if p.PiecesBb(c, types.King).PopCount() != 1 {
			report("%s has %d kings, expected exactly 1", c, p.PiecesBb(c, types.King).PopCount())
		}
		if n := p.PiecesBb(c, types.Pawn).PopCount(); n > 8 {
			report("%s has %d pawns, expected at most 8", c, n)
		}
		if n := p.OccupiedBy(c).PopCount(); n > 16 {
			report("%s has %d pieces, expected at most 16", c, n)
		}
	}

	if (p.PiecesBb(types.White, types.Pawn)|p.PiecesBb(types.Black, types.Pawn))&(types.Rank1Bb|types.Rank8Bb) != types.BbZero {
		report("pawns present on rank 1 or rank 8")
	}

	p.validateBitboardConsistency(report)
	p.validateDerivedState(report)
	p.validateKingsAndCheckers(report)
	p.validateEnPassant(report)
	p.validateCastlingRights(report)
	p.validatePromotionBalance(report)

	return errs
}

func (p *Position) validateBitboardConsistency(report func(string, ...interface{})) {
	var seen types.Bitboard
	for i := 0; i < 12; i++ {
		if p.pieceBb[i]&seen != types.BbZero {
			report("piece bitboards overlap")
		}
		seen |= p.pieceBb[i]
	}

	var whiteBb, blackBb types.Bitboard
	for pt := types.King; pt < types.PtLength; pt++ {
		whiteBb |= p.PiecesBb(types.White, pt)
		blackBb |= p.PiecesBb(types.Black, pt)
	}
	if whiteBb != p.occBb[types.White] {
		report("white occupancy bitboard does not match union of white piece bitboards")
	}
	if blackBb != p.occBb[types.Black] {
		report("black occupancy bitboard does not match union of black piece bitboards")
	}
	if p.occBb[types.White]|p.occBb[types.Black] != p.occAll {
		report("total occupancy bitboard does not match union of per-color occupancy")
	}
	if p.occBb[types.White]&p.occBb[types.Black] != types.BbZero {
		report("white and black occupancy overlap")
	}

	for sq := types.SqA1; sq < types.SqNone; sq++ {
		pc := p.board[sq]
		onBb := p.occAll.Has(sq)
		if pc == types.PieceNone && onBb {
			report("square %s is empty on the board array but occupied in occ_bb[ALL]", sq)
		}
		if pc != types.PieceNone && !onBb {
			report("square %s holds %s on the board array but is absent from occ_bb[ALL]", sq, pc)
		}
	}
}

func (p *Position) validateDerivedState(report func(string, ...interface{})) {
	saved := *p
	p.refreshDerivedState()
	fresh := snapshot{checkers: p.checkers, attackedSquares: p.attackedSquares, pinnedPieces: p.pinnedPieces}
	*p = saved

	if fresh.checkers != p.checkers {
		report("checkers is stale: recomputation gives %#x, stored value is %#x", uint64(fresh.checkers), uint64(p.checkers))
	}
	if fresh.attackedSquares != p.attackedSquares {
		report("attacked_squares is stale")
	}
	if fresh.pinnedPieces != p.pinnedPieces {
		report("pinned_pieces is stale")
	}
}

func (p *Position) validateKingsAndCheckers(report func(string, ...interface{})) {
	wk, bk := p.kingSquare[types.White], p.kingSquare[types.Black]
	if p.lookup.KingAttacks(wk).Has(bk) {
		report("kings on %s and %s are adjacent", wk, bk)
	}

	n := p.checkers.PopCount()
	if n > 2 {
		report("%d checkers given, at most 2 are physically possible", n)
	}
	if n == 2 {
		var kinds []types.PieceType
		for bb := p.checkers; bb != types.BbZero; {
			kinds = append(kinds, p.board[bb.PopLsb()].TypeOf())
		}
		if !doubleCheckRealizable(kinds[0], kinds[1]) {
			report("double check by %s and %s is not physically realizable", kinds[0], kinds[1])
		}
	}

	them := p.sideToMove.Flip()
	if p.IsAttacked(p.kingSquare[them], p.sideToMove) {
		report("%s king is attacked while it is not %s's turn", them, them)
	}
}

// doubleCheckRealizable reports whether two simultaneous checkers of the
// given kinds could arise from a single move: two pawns, pawn+knight,
// pawn+bishop, two knights, or two bishops can never check a king at the
// same time, since none of those combinations can be revealed together.
func doubleCheckRealizable(a, b types.PieceType) bool {
	if a > b {
		a, b = b, a
	}
	switch {
	case a == types.Pawn && b == types.Pawn:
		return false
	case a == types.Pawn && b == types.Knight:
		return false
	case a == types.Pawn && b == types.Bishop:
		return false
	case a == types.Knight && b == types.Knight:
		return false
	case a == types.Bishop && b == types.Bishop:
		return false
	default:
		return true
	}
}

func (p *Position) validateEnPassant(report func(string, ...interface{})) {
	ep := p.enPassant
	if ep == types.SqNone {
		return
	}
	if ep.RankOf() != types.Rank3 && ep.RankOf() != types.Rank6 {
		report("en passant square %s is not on rank 3 or 6", ep)
	}
	var pawnSq types.Square
	var mover types.Color
	if ep.RankOf() == types.Rank3 {
		pawnSq, mover = ep.To(types.North), types.Black
	} else {
		pawnSq, mover = ep.To(types.South), types.White
	}
	if p.board[pawnSq] != types.MakePiece(mover.Flip(), types.Pawn) {
		report("en passant square %s has no matching pawn on %s", ep, pawnSq)
	}
	if p.board[ep] != types.PieceNone || p.board[ep.To(mover.MoveDirection())] != types.PieceNone {
		report("en passant square %s or the square behind it is not empty", ep)
	}
}

func (p *Position) validateCastlingRights(report func(string, ...interface{})) {
	type check struct {
		right    types.CastlingRights
		king     types.Square
		rook     types.Square
		kingHome types.Square
	}
	checks := []check{
		{types.CastlingWhiteOO, types.SqE1, types.SqH1, types.SqE1},
		{types.CastlingWhiteOOO, types.SqE1, types.SqA1, types.SqE1},
		{types.CastlingBlackOO, types.SqE8, types.SqH8, types.SqE8},
		{types.CastlingBlackOOO, types.SqE8, types.SqA8, types.SqE8},
	}
	for _, c := range checks {
		if !p.castling.Has(c.right) {
			continue
		}
		king := p.board[c.kingHome]
		rook := p.board[c.rook]
		if king.TypeOf() != types.King || rook.TypeOf() != types.Rook || king.ColorOf() != rook.ColorOf() {
			report("castling right %s is set but king/rook are not on their home squares", c.right)
		}
	}
}

func (p *Position) validatePromotionBalance(report func(string, ...interface{})) {
	for _, c := range [2]types.Color{types.White, types.Black} {
		missingPawns := 8 - p.PiecesBb(c, types.Pawn).PopCount()
		extraPieces := 0
		extraPieces += maxInt(0, p.PiecesBb(c, types.Knight).PopCount()-2)
		extraPieces += maxInt(0, p.PiecesBb(c, types.Bishop).PopCount()-2)
		extraPieces += maxInt(0, p.PiecesBb(c, types.Rook).PopCount()-2)
		extraPieces += maxInt(0, p.PiecesBb(c, types.Queen).PopCount()-1)
		if extraPieces > missingPawns {
			report("%s has %d promoted pieces but only %d missing pawns to account for them", c, extraPieces, missingPawns)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
