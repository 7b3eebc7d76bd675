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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnightAttacksFromCorner(t *testing.T) {
	lt := NewLookupTables()
	got := lt.KnightAttacks(SqA1)
	assert.Equal(t, SqB3.Bb()|SqC2.Bb(), got)
}

func TestKingAttacksFromCorner(t *testing.T) {
	lt := NewLookupTables()
	got := lt.KingAttacks(SqA1)
	assert.Equal(t, SqA2.Bb()|SqB1.Bb()|SqB2.Bb(), got)
}

func TestPawnAttacksAndPushesAreColorSpecific(t *testing.T) {
	lt := NewLookupTables()
	assert.Equal(t, SqD5.Bb()|SqF5.Bb(), lt.PawnAttacks(SqE4, White))
	assert.Equal(t, SqD3.Bb()|SqF3.Bb(), lt.PawnAttacks(SqE4, Black))
	assert.Equal(t, SqE5.Bb(), lt.PawnPushes(SqE4, White))
	assert.Equal(t, SqE3.Bb(), lt.PawnPushes(SqE4, Black))
}

func TestRookAndBishopAttacksRespectOccupancy(t *testing.T) {
	lt := NewLookupTables()
	occ := SqD6.Bb() | SqD1.Bb()
	rook := lt.RookAttacks(SqD4, occ)
	assert.True(t, rook.Has(SqD5))
	assert.True(t, rook.Has(SqD6), "ray includes the first blocker")
	assert.False(t, rook.Has(SqD7), "ray stops beyond the first blocker")
	assert.True(t, rook.Has(SqD1))

	bishop := lt.BishopAttacks(SqD4, BbZero)
	assert.True(t, bishop.Has(SqA1))
	assert.True(t, bishop.Has(SqH8))

	assert.Equal(t, rook|bishop, lt.QueenAttacks(SqD4, occ))
}

func TestGetAttacksBbDispatchesByPieceType(t *testing.T) {
	lt := NewLookupTables()
	sq, occ := SqD4, BbZero
	assert.Equal(t, lt.KnightAttacks(sq), lt.GetAttacksBb(Knight, sq, occ))
	assert.Equal(t, lt.KingAttacks(sq), lt.GetAttacksBb(King, sq, occ))
	assert.Equal(t, lt.RookAttacks(sq, occ), lt.GetAttacksBb(Rook, sq, occ))
	assert.Equal(t, lt.BishopAttacks(sq, occ), lt.GetAttacksBb(Bishop, sq, occ))
	assert.Equal(t, lt.QueenAttacks(sq, occ), lt.GetAttacksBb(Queen, sq, occ))
	assert.Equal(t, BbZero, lt.GetAttacksBb(Pawn, sq, occ))
}

func TestBetweenAndLineThrough(t *testing.T) {
	lt := NewLookupTables()

	assert.Equal(t, SqB1.Bb()|SqC1.Bb()|SqD1.Bb(), lt.Between(SqA1, SqE1))
	assert.Equal(t, Rank1Bb, lt.LineThrough(SqA1, SqE1))

	assert.Equal(t, SqB2.Bb()|SqC3.Bb(), lt.Between(SqA1, SqD4))
	assert.True(t, lt.LineThrough(SqA1, SqD4).Has(SqH8))

	assert.Equal(t, BbZero, lt.Between(SqA1, SqB3), "knight-shaped offset shares no line")
	assert.Equal(t, BbZero, lt.LineThrough(SqA1, SqB3))

	assert.Equal(t, BbZero, lt.Between(SqA1, SqA1))
}
