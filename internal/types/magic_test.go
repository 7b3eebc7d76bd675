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

// TestBuildMagicsMatchesSlidingAttack cross-checks every magic-indexed
// lookup against slidingAttack, the simple ray-walking reference the
// fixed magic numbers are verified against under assert.DEBUG, for a
// sample of occupancies per square rather than the exhaustive subset
// enumeration buildMagics performs internally.
func TestBuildMagicsMatchesSlidingAttack(t *testing.T) {
	rookMagics := buildMagics(rookDirs, rookMagicNumbers)
	bishopMagics := buildMagics(bishopDirs, bishopMagicNumbers)

	occupancies := []Bitboard{
		BbZero,
		BbAll,
		SqD4.Bb() | SqD6.Bb() | SqB4.Bb() | SqF4.Bb(),
		SqA1.Bb() | SqH8.Bb() | SqA8.Bb() | SqH1.Bb(),
	}

	for sq := SqA1; sq < SqNone; sq++ {
		for _, occ := range occupancies {
			rm := &rookMagics[sq]
			assert.Equal(t, slidingAttack(rookDirs, sq, occ), rm.Attacks[rm.index(occ)], "rook %s", sq)

			bm := &bishopMagics[sq]
			assert.Equal(t, slidingAttack(bishopDirs, sq, occ), bm.Attacks[bm.index(occ)], "bishop %s", sq)
		}
	}
}

func TestSlidingAttackStopsAtFirstBlocker(t *testing.T) {
	occ := SqD4.Bb()
	attack := slidingAttack(rookDirs, SqA4, occ)
	assert.True(t, attack.Has(SqD4), "ray includes the blocking square itself")
	assert.False(t, attack.Has(SqE4), "ray stops at the first blocker")
}

func TestRookAndBishopMagicNumbersAreFixedInputData(t *testing.T) {
	// The multiplier for every square is a literal constant, not a value
	// produced by any runtime computation.
	for sq := SqA1; sq < SqNone; sq++ {
		assert.NotZero(t, rookMagicNumbers[sq], "rook magic %s", sq)
		assert.NotZero(t, bishopMagicNumbers[sq], "bishop magic %s", sq)
	}
}
