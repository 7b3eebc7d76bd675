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

// Piece packs a Color and a PieceType into a single byte: (color<<3)+pieceType.
type Piece int8

const (
	PieceNone Piece = 0

	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6

	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14

	PieceLength = 16
)

// MakePiece builds a Piece from a Color and PieceType.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c<<3) + Piece(pt)
}

// ColorOf returns the color of p.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece kind of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// IsValid reports whether p is a real piece (not PieceNone, not an unused slot).
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

const pieceToString = " KPNBRQ- kpnbrq-"

// PieceFromChar parses a single FEN piece letter into a Piece, or
// PieceNone if s is not a recognized letter. The '-' and ' ' slots in
// pieceToString are unused padding, not real piece characters, and are
// skipped so they can never match.
func PieceFromChar(s string) Piece {
	if s == "-" || s == " " {
		return PieceNone
	}
	for i := 0; i < len(pieceToString); i++ {
		if string(pieceToString[i]) == s {
			return Piece(i)
		}
	}
	return PieceNone
}

// String returns the FEN letter for p (uppercase for White, lowercase for Black).
func (p Piece) String() string {
	return string(pieceToString[p])
}

// Char is an alias of String kept for symmetry with PieceType.Char.
func (p Piece) Char() string {
	return p.String()
}
