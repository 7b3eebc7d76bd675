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

// refreshDerivedState recomputes checkers, attacked_squares and
// pinned_pieces from scratch for the side to move. Called after every
// apply_move and after FEN parsing (undo_move restores the sets saved in
// its snapshot); never updated incrementally, per the cache contract
// these sets exist under.
func (p *Position) refreshDerivedState() {
	us := p.sideToMove
	them := us.Flip()
	king := p.kingSquare[us]

	attackOcc := p.occAll.PopSquare(king)

	var attacked, checkers types.Bitboard
	for sq := types.SqA1; sq < types.SqNone; sq++ {
		pc := p.board[sq]
		if pc == types.PieceNone || pc.ColorOf() != them {
			continue
		}
		var attacks types.Bitboard
		switch pt := pc.TypeOf(); pt {
		case types.Pawn:
			attacks = p.lookup.PawnAttacks(sq, them)
		default:
			attacks = p.lookup.GetAttacksBb(pt, sq, attackOcc)
		}
		attacked |= attacks
		if attacks.Has(king) {
			checkers = checkers.PushSquare(sq)
		}
	}
	p.attackedSquares = attacked
	p.checkers = checkers
	p.pinnedPieces = p.computePinnedPieces(us, them, king)
}

// computePinnedPieces finds every side-to-move piece absolutely pinned
// against its own king: for each enemy slider that shares a rank, file
// or diagonal with the king, if exactly one piece sits on the ray
// between them and it belongs to us, that piece is pinned.
func (p *Position) computePinnedPieces(us, them types.Color, king types.Square) types.Bitboard {
	var pinned types.Bitboard
	sliders := p.PiecesBb(them, types.Rook) | p.PiecesBb(them, types.Bishop) | p.PiecesBb(them, types.Queen)
	for bb := sliders; bb != types.BbZero; {
		sq := bb.PopLsb()
		pc := p.board[sq]
		pt := pc.TypeOf()
		sliderAligned := (pt == types.Rook || pt == types.Queen) && sameRankOrFile(sq, king)
		diagAligned := (pt == types.Bishop || pt == types.Queen) && sameDiagonal(sq, king)
		if !sliderAligned && !diagAligned {
			continue
		}
		ray := p.lookup.Between(sq, king)
		blockers := ray & p.occAll
		if blockers.PopCount() == 1 {
			if blocker := blockers.Lsb(); p.board[blocker].ColorOf() == us {
				pinned = pinned.PushSquare(blocker)
			}
		}
	}
	return pinned
}

func sameRankOrFile(a, b types.Square) bool {
	return a.FileOf() == b.FileOf() || a.RankOf() == b.RankOf()
}

func sameDiagonal(a, b types.Square) bool {
	df := int(a.FileOf()) - int(b.FileOf())
	dr := int(a.RankOf()) - int(b.RankOf())
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	return df == dr
}

// IsAttacked reports whether sq is attacked by any piece of color by,
// using the current board occupancy (not the king-removed occupancy
// attacked_squares is computed with).
func (p *Position) IsAttacked(sq types.Square, by types.Color) bool {
	if p.lookup.PawnAttacks(sq, by.Flip())&p.PiecesBb(by, types.Pawn) != types.BbZero {
		return true
	}
	if p.lookup.KnightAttacks(sq)&p.PiecesBb(by, types.Knight) != types.BbZero {
		return true
	}
	if p.lookup.KingAttacks(sq)&p.PiecesBb(by, types.King) != types.BbZero {
		return true
	}
	occ := p.occAll
	if p.lookup.BishopAttacks(sq, occ)&(p.PiecesBb(by, types.Bishop)|p.PiecesBb(by, types.Queen)) != types.BbZero {
		return true
	}
	if p.lookup.RookAttacks(sq, occ)&(p.PiecesBb(by, types.Rook)|p.PiecesBb(by, types.Queen)) != types.BbZero {
		return true
	}
	return false
}
