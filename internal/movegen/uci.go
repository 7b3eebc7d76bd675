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

package movegen

import (
	"fmt"

	"github.com/frankkopp/chessgen/internal/position"
	"github.com/frankkopp/chessgen/internal/types"
)

// ParseUciMove parses a long-algebraic move string ("e2e4", "a7a8q") and
// matches it against the position's legal moves, so the returned Move
// carries the right MoveType (Normal/Promotion/EnPassant/Castling) even
// though the UCI string itself only ever encodes from/to/promotion.
func ParseUciMove(p *position.Position, s string) (types.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return types.MoveNone, fmt.Errorf("uci move %q: must be 4 or 5 characters", s)
	}
	from := types.MakeSquare(s[0:2])
	to := types.MakeSquare(s[2:4])
	if from == types.SqNone || to == types.SqNone {
		return types.MoveNone, fmt.Errorf("uci move %q: invalid square", s)
	}
	var promo types.PieceType = types.PtNone
	if len(s) == 5 {
		promo = types.PieceFromChar(s[4:5]).TypeOf()
		if promo != types.Queen && promo != types.Rook && promo != types.Bishop && promo != types.Knight {
			return types.MoveNone, fmt.Errorf("uci move %q: invalid promotion piece", s)
		}
	}

	moves := GenerateMoves(p, Legal)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.MoveType() == types.Promotion && m.PromotionType() != promo {
			continue
		}
		return m, nil
	}
	return types.MoveNone, fmt.Errorf("uci move %q: not a legal move in this position", s)
}
