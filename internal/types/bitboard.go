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
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit 1<<sq set means sq is a member.
type Bitboard uint64

// BbZero is the empty board. It is the only encoding for "empty".
const BbZero Bitboard = 0

// BbAll has every square set.
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

const bbOne Bitboard = 1

// File and rank constant bitboards, built in init() below.
var (
	FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb Bitboard
	Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb Bitboard

	fileBb [8]Bitboard
	rankBb [8]Bitboard
	sqBb   [SqLength]Bitboard
)

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = bbOne << sq
	}
	for f := FileA; f <= FileH; f++ {
		var b Bitboard
		for r := Rank1; r <= Rank8; r++ {
			b |= sqBb[SquareOf(f, r)]
		}
		fileBb[f] = b
	}
	for r := Rank1; r <= Rank8; r++ {
		var b Bitboard
		for f := FileA; f <= FileH; f++ {
			b |= sqBb[SquareOf(f, r)]
		}
		rankBb[r] = b
	}
	FileABb, FileBBb, FileCBb, FileDBb = fileBb[FileA], fileBb[FileB], fileBb[FileC], fileBb[FileD]
	FileEBb, FileFBb, FileGBb, FileHBb = fileBb[FileE], fileBb[FileF], fileBb[FileG], fileBb[FileH]
	Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb = rankBb[Rank1], rankBb[Rank2], rankBb[Rank3], rankBb[Rank4]
	Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb = rankBb[Rank5], rankBb[Rank6], rankBb[Rank7], rankBb[Rank8]
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != BbZero
}

// PushSquare returns b with sq added.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	return b | sqBb[sq]
}

// PopSquare returns b with sq removed.
func (b Bitboard) PopSquare(sq Square) Bitboard {
	return b &^ sqBb[sq]
}

// Lsb returns the lowest-index set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the highest-index set square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the lowest-index set square, or SqNone if b
// is already empty. b is modified through its pointer receiver so that
// the common `for bb != BbZero { sq := bb.PopLsb() }` iteration idiom works.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// PopCount returns the number of set squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftBitboard translates every square in b one step in direction d,
// squares that would wrap around a file edge are dropped.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Northwest:
		return (b &^ FileABb) << 7
	case Southwest:
		return (b &^ FileABb) >> 9
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// String renders b as a hex literal.
func (b Bitboard) String() string {
	return fmt.Sprintf("0x%016X", uint64(b))
}

// StringBoard renders b as an 8x8 grid, rank 8 first, for debugging.
func (b Bitboard) StringBoard() string {
	var s strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, Rank(r))
			if b.Has(sq) {
				s.WriteString("1 ")
			} else {
				s.WriteString(". ")
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}
