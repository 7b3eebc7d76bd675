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

// Package movegen generates pseudo-legal and legal moves from a Position,
// and drives the perft tree-enumeration used to validate the generator
// against known node counts.
package movegen

import (
	"github.com/frankkopp/chessgen/internal/moveslice"
	"github.com/frankkopp/chessgen/internal/position"
	"github.com/frankkopp/chessgen/internal/types"
)

// Legality selects whether GenerateMoves filters out moves that leave the
// mover in check (Legal) or not (PseudoLegal, used internally to probe
// attack sets without the cost of full legality filtering).
type Legality int

const (
	Legal Legality = iota
	PseudoLegal
)

var promotionKinds = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}
var slidingPieceKinds = [4]types.PieceType{types.Knight, types.Bishop, types.Rook, types.Queen}

// GenerateMoves returns every move available to the side to move at the
// requested legality. If checkers is non-empty the position dispatches to
// evasion generation; otherwise it generates non-evasions.
func GenerateMoves(p *position.Position, legality Legality) *moveslice.MoveSlice {
	ms := moveslice.NewMoveSlice(64)
	if p.Checkers() != types.BbZero {
		generateEvasions(p, legality, ms)
	} else {
		generateNonEvasions(p, legality, ms)
	}
	return ms
}

func generateNonEvasions(p *position.Position, legality Legality, ms *moveslice.MoveSlice) {
	generatePieceMoves(p, legality, ms, types.BbAll)
	generatePawnMoves(p, legality, ms, types.BbAll)
	generateKingMoves(p, legality, ms)
	generateCastling(p, ms)
}

// generateEvasions always generates king moves first, then — for a single
// checker — every other piece's moves intersected with the squares that
// would block or capture it. With two checkers only king moves are legal.
func generateEvasions(p *position.Position, legality Legality, ms *moveslice.MoveSlice) {
	generateKingMoves(p, legality, ms)

	if p.Checkers().PopCount() >= 2 {
		return
	}

	checkerSq := p.Checkers().Lsb()
	moveMask := checkerSq.Bb()
	switch p.PieceAt(checkerSq).TypeOf() {
	case types.Bishop, types.Rook, types.Queen:
		moveMask |= p.Lookup().Between(checkerSq, p.KingSquare(p.SideToMove()))
	}

	generatePieceMoves(p, legality, ms, moveMask)
	generatePawnMoves(p, legality, ms, moveMask)
}

func generatePieceMoves(p *position.Position, legality Legality, ms *moveslice.MoveSlice, moveMask types.Bitboard) {
	us := p.SideToMove()
	king := p.KingSquare(us)
	lookup := p.Lookup()
	occAll := p.OccupiedAll()
	ownOcc := p.OccupiedBy(us)

	for _, pt := range slidingPieceKinds {
		for bb := p.PiecesBb(us, pt); bb != types.BbZero; {
			sq := bb.PopLsb()
			dest := lookup.GetAttacksBb(pt, sq, occAll) &^ ownOcc
			if legality == Legal && p.PinnedPieces().Has(sq) {
				dest &= lookup.LineThrough(sq, king)
			}
			dest &= moveMask
			addNormalMoves(ms, sq, dest)
		}
	}
}

func generateKingMoves(p *position.Position, legality Legality, ms *moveslice.MoveSlice) {
	us := p.SideToMove()
	from := p.KingSquare(us)
	dest := p.Lookup().KingAttacks(from) &^ p.OccupiedBy(us)
	if legality == Legal {
		dest &^= p.AttackedSquares()
	}
	addNormalMoves(ms, from, dest)
}

type castleOption struct {
	right   types.CastlingRights
	kingTo  types.Square
	between types.Bitboard
	transit types.Bitboard
}

var whiteCastleOptions = [2]castleOption{
	{types.CastlingWhiteOO, types.SqG1, types.SqF1.Bb() | types.SqG1.Bb(), types.SqE1.Bb() | types.SqF1.Bb() | types.SqG1.Bb()},
	{types.CastlingWhiteOOO, types.SqC1, types.SqB1.Bb() | types.SqC1.Bb() | types.SqD1.Bb(), types.SqE1.Bb() | types.SqD1.Bb() | types.SqC1.Bb()},
}
var blackCastleOptions = [2]castleOption{
	{types.CastlingBlackOO, types.SqG8, types.SqF8.Bb() | types.SqG8.Bb(), types.SqE8.Bb() | types.SqF8.Bb() | types.SqG8.Bb()},
	{types.CastlingBlackOOO, types.SqC8, types.SqB8.Bb() | types.SqC8.Bb() | types.SqD8.Bb(), types.SqE8.Bb() | types.SqD8.Bb() | types.SqC8.Bb()},
}

// generateCastling emits the king's two-square castling move for every
// right that is currently legal: the right is set, the squares between
// king and rook are empty, and every square the king transits (including
// start and destination) is unattacked. This legality check is applied
// unconditionally, independent of the Legality parameter, since an
// illegal castle is never a pseudo-legal move either.
func generateCastling(p *position.Position, ms *moveslice.MoveSlice) {
	us := p.SideToMove()
	king := p.KingSquare(us)
	occAll := p.OccupiedAll()
	attacked := p.AttackedSquares()

	options := whiteCastleOptions[:]
	if us == types.Black {
		options = blackCastleOptions[:]
	}

	for _, o := range options {
		if !p.CastlingRights().Has(o.right) {
			continue
		}
		if o.between&occAll != types.BbZero {
			continue
		}
		if o.transit&attacked != types.BbZero {
			continue
		}
		ms.PushBack(types.CreateMove(king, o.kingTo, types.Castling, types.PtNone))
	}
}

func generatePawnMoves(p *position.Position, legality Legality, ms *moveslice.MoveSlice, moveMask types.Bitboard) {
	us := p.SideToMove()
	them := us.Flip()
	lookup := p.Lookup()
	king := p.KingSquare(us)
	occAll := p.OccupiedAll()
	enemyOcc := p.OccupiedBy(them)
	epSq := p.EnPassantSquare()

	for bb := p.PiecesBb(us, types.Pawn); bb != types.BbZero; {
		from := bb.PopLsb()
		pinned := legality == Legal && p.PinnedPieces().Has(from)
		var pinLine types.Bitboard
		if pinned {
			pinLine = lookup.LineThrough(from, king)
		}

		pushes := lookup.PawnPushes(from, us) &^ occAll
		if pushes&us.PawnDoubleRank() != types.BbZero {
			if double := pushes.Lsb().To(us.MoveDirection()); double != types.SqNone && !occAll.Has(double) {
				pushes |= double.Bb()
			}
		}
		if pinned {
			pushes &= pinLine
		}
		pushes &= moveMask
		addPawnMoves(ms, from, us, pushes)

		capTargets := lookup.PawnAttacks(from, us) & enemyOcc
		if pinned {
			capTargets &= pinLine
		}
		capTargets &= moveMask
		addPawnMoves(ms, from, us, capTargets)

		if epSq != types.SqNone && lookup.PawnAttacks(from, us).Has(epSq) {
			epAllowed := !pinned || pinLine.Has(epSq)
			if epAllowed && enPassantMoveAllowed(p, epSq, moveMask) && enPassantLegal(p, from, epSq, us, them) {
				ms.PushBack(types.CreateMove(from, epSq, types.EnPassant, types.PtNone))
			}
		}
	}
}

// enPassantMoveAllowed applies the evasion move_mask to an en-passant
// capture: it is allowed if the destination square or the captured pawn's
// square is in the mask (capturing the checking pawn en passant is the one
// case where the captured square differs from the destination square).
func enPassantMoveAllowed(p *position.Position, epSq types.Square, moveMask types.Bitboard) bool {
	if moveMask == types.BbAll {
		return true
	}
	capturedSq := epSq.To(p.SideToMove().Flip().MoveDirection())
	return moveMask.Has(epSq) || moveMask.Has(capturedSq)
}

// enPassantLegal constructs the hypothetical post-move occupancy (mover
// relocated, captured pawn removed, destination occupied) and rejects the
// capture if it would expose the king to a rook/bishop/queen attack along
// the rank the two pawns shared — the discovered-check case ordinary pin
// detection cannot see because it removes two pieces simultaneously.
func enPassantLegal(p *position.Position, from, epSq types.Square, us, them types.Color) bool {
	capturedSq := epSq.To(them.MoveDirection())
	occ := p.OccupiedAll()
	occ = occ.PopSquare(from).PopSquare(capturedSq).PushSquare(epSq)

	king := p.KingSquare(us)
	lookup := p.Lookup()
	rooksQueens := p.PiecesBb(them, types.Rook) | p.PiecesBb(them, types.Queen)
	if lookup.RookAttacks(king, occ)&rooksQueens != types.BbZero {
		return false
	}
	bishopsQueens := p.PiecesBb(them, types.Bishop) | p.PiecesBb(them, types.Queen)
	if lookup.BishopAttacks(king, occ)&bishopsQueens != types.BbZero {
		return false
	}
	return true
}

func addNormalMoves(ms *moveslice.MoveSlice, from types.Square, dest types.Bitboard) {
	for dest != types.BbZero {
		to := dest.PopLsb()
		ms.PushBack(types.CreateMove(from, to, types.Normal, types.PtNone))
	}
}

// addPawnMoves emits one move per destination, expanding into the four
// promotion moves when the destination lies on us's promotion rank.
func addPawnMoves(ms *moveslice.MoveSlice, from types.Square, us types.Color, dest types.Bitboard) {
	for dest != types.BbZero {
		to := dest.PopLsb()
		if to.Bb()&us.PromotionRankBb() != types.BbZero {
			for _, pk := range promotionKinds {
				ms.PushBack(types.CreateMove(from, to, types.Promotion, pk))
			}
			continue
		}
		ms.PushBack(types.CreateMove(from, to, types.Normal, types.PtNone))
	}
}
