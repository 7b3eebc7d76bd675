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

package types

// LookupTables holds every precomputed attack and geometry table the move
// generator needs: non-sliding piece attacks, pawn pushes and captures,
// sliding-piece magic bitboards, and the ray/between/line-through tables
// used for pin detection and check evasion. Construction is the only
// expensive step; once built a LookupTables is immutable and safe to
// share across goroutines.
type LookupTables struct {
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
	pawnAttacks   [2][SqLength]Bitboard
	pawnPushes    [2][SqLength]Bitboard

	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic

	// between[a][b] holds the squares strictly between a and b when they
	// share a rank, file or diagonal; BbZero otherwise.
	between [SqLength][SqLength]Bitboard
	// line[a][b] holds the full rank/file/diagonal line through a and b,
	// including both endpoints, when they share one; BbZero otherwise.
	line [SqLength][SqLength]Bitboard
}

var knightDeltas = [8]Direction{
	Direction(North + North + East), Direction(North + North + West),
	Direction(South + South + East), Direction(South + South + West),
	Direction(East + East + North), Direction(East + East + South),
	Direction(West + West + North), Direction(West + West + South),
}

// NewLookupTables builds and returns a fully populated, ready-to-use
// table set. Expensive (dominated by filling the magic attack tables); callers
// build exactly one and share it across every Position.
func NewLookupTables() *LookupTables {
	lt := &LookupTables{}
	lt.rookMagics = buildMagics(rookDirs, rookMagicNumbers)
	lt.bishopMagics = buildMagics(bishopDirs, bishopMagicNumbers)

	for sq := SqA1; sq < SqNone; sq++ {
		lt.knightAttacks[sq] = knightAttacksFrom(sq)
		lt.kingAttacks[sq] = kingAttacksFrom(sq)
		lt.pawnAttacks[White][sq] = pawnAttacksFrom(sq, White)
		lt.pawnAttacks[Black][sq] = pawnAttacksFrom(sq, Black)
		lt.pawnPushes[White][sq] = pawnPushesFrom(sq, White)
		lt.pawnPushes[Black][sq] = pawnPushesFrom(sq, Black)
	}

	for from := SqA1; from < SqNone; from++ {
		for to := SqA1; to < SqNone; to++ {
			lt.between[from][to], lt.line[from][to] = computeBetweenAndLine(lt, from, to)
		}
	}
	return lt
}

func knightAttacksFrom(sq Square) Bitboard {
	var b Bitboard
	for _, d := range knightDeltas {
		if to := knightStep(sq, d); to != SqNone {
			b = b.PushSquare(to)
		}
	}
	return b
}

// knightStep applies a two-one knight delta to sq, rejecting any step
// that would wrap around a board edge.
func knightStep(sq Square, d Direction) Square {
	f, r := int(sq.FileOf()), int(sq.RankOf())
	var df, dr int
	switch d {
	case Direction(North + North + East):
		df, dr = 1, 2
	case Direction(North + North + West):
		df, dr = -1, 2
	case Direction(South + South + East):
		df, dr = 1, -2
	case Direction(South + South + West):
		df, dr = -1, -2
	case Direction(East + East + North):
		df, dr = 2, 1
	case Direction(East + East + South):
		df, dr = 2, -1
	case Direction(West + West + North):
		df, dr = -2, 1
	case Direction(West + West + South):
		df, dr = -2, -1
	}
	nf, nr := f+df, r+dr
	if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
		return SqNone
	}
	return SquareOf(File(nf), Rank(nr))
}

func kingAttacksFrom(sq Square) Bitboard {
	var b Bitboard
	for _, d := range Directions {
		if to := sq.To(d); to != SqNone {
			b = b.PushSquare(to)
		}
	}
	return b
}

func pawnAttacksFrom(sq Square, c Color) Bitboard {
	var b Bitboard
	dir := pawnDir[c]
	if to := sq.To(dir + East); to != SqNone {
		b = b.PushSquare(to)
	}
	if to := sq.To(dir + West); to != SqNone {
		b = b.PushSquare(to)
	}
	return b
}

func pawnPushesFrom(sq Square, c Color) Bitboard {
	var b Bitboard
	if to := sq.To(pawnDir[c]); to != SqNone {
		b = b.PushSquare(to)
	}
	return b
}

// computeBetweenAndLine derives the between- and line-bitboards for a
// pair of squares by scanning both sliding rays from "from" and checking
// whether "to" lies on one of them.
func computeBetweenAndLine(lt *LookupTables, from, to Square) (Bitboard, Bitboard) {
	if from == to {
		return BbZero, BbZero
	}
	for _, d := range Directions {
		var ray Bitboard
		cur := from
		found := false
		for {
			next := cur.To(d)
			if next == SqNone {
				break
			}
			if next == to {
				found = true
				break
			}
			ray = ray.PushSquare(next)
			cur = next
		}
		if found {
			return ray, lt.extendLine(from, to, d)
		}
	}
	return BbZero, BbZero
}

// extendLine returns the complete rank, file or diagonal line through
// both from and to, given the direction d that steps from from to to.
func (lt *LookupTables) extendLine(from, to Square, d Direction) Bitboard {
	line := from.Bb().PushSquare(to)
	cur := from
	for {
		prev := cur.To(oppositeDir(d))
		if prev == SqNone {
			break
		}
		line = line.PushSquare(prev)
		cur = prev
	}
	cur = from
	for {
		next := cur.To(d)
		if next == SqNone {
			break
		}
		line = line.PushSquare(next)
		cur = next
	}
	return line
}

func oppositeDir(d Direction) Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Northeast:
		return Southwest
	case Southwest:
		return Northeast
	case Northwest:
		return Southeast
	case Southeast:
		return Northwest
	default:
		return 0
	}
}

// KnightAttacks returns the knight's pseudo-attack set from sq.
func (lt *LookupTables) KnightAttacks(sq Square) Bitboard { return lt.knightAttacks[sq] }

// KingAttacks returns the king's pseudo-attack set from sq.
func (lt *LookupTables) KingAttacks(sq Square) Bitboard { return lt.kingAttacks[sq] }

// PawnAttacks returns the pawn capture targets from sq for color c.
func (lt *LookupTables) PawnAttacks(sq Square, c Color) Bitboard { return lt.pawnAttacks[c][sq] }

// PawnPushes returns the single-step pawn push target from sq for color c.
func (lt *LookupTables) PawnPushes(sq Square, c Color) Bitboard { return lt.pawnPushes[c][sq] }

// RookAttacks returns the rook's attack set from sq given occupied.
func (lt *LookupTables) RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &lt.rookMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// BishopAttacks returns the bishop's attack set from sq given occupied.
func (lt *LookupTables) BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &lt.bishopMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// QueenAttacks returns the queen's attack set from sq given occupied.
func (lt *LookupTables) QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return lt.RookAttacks(sq, occupied) | lt.BishopAttacks(sq, occupied)
}

// GetAttacksBb dispatches to the right attack table for pt, the one
// language-neutral entry point spec's move generator and derived-state
// computation both use.
func (lt *LookupTables) GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return lt.KnightAttacks(sq)
	case King:
		return lt.KingAttacks(sq)
	case Bishop:
		return lt.BishopAttacks(sq, occupied)
	case Rook:
		return lt.RookAttacks(sq, occupied)
	case Queen:
		return lt.QueenAttacks(sq, occupied)
	default:
		return BbZero
	}
}

// Between returns the squares strictly between a and b if they share a
// rank, file or diagonal, or BbZero if they don't.
func (lt *LookupTables) Between(a, b Square) Bitboard { return lt.between[a][b] }

// LineThrough returns the full rank, file or diagonal line through both
// a and b, including both endpoints, or BbZero if they share none.
func (lt *LookupTables) LineThrough(a, b Square) Bitboard { return lt.line[a][b] }
