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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessgen/internal/position"
	"github.com/frankkopp/chessgen/internal/util"
)

var out = message.NewPrinter(language.German)

// Perft enumerates the legal move tree below a position and counts leaf
// nodes at a fixed depth; the result is the canonical oracle used to
// validate the generator against known reference counts.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	moves := GenerateMoves(p, Legal)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.ApplyMove(m)
		nodes += Perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

// DivideResult holds one root move's subtree node count, as produced by
// Divide.
type DivideResult struct {
	MoveUci string
	Nodes   uint64
}

// Divide runs perft one ply at a time, reporting the subtree count under
// each root move individually. Used to localize discrepancies against a
// reference perft tool by bisecting on the first move that disagrees.
func Divide(p *position.Position, depth int) ([]DivideResult, uint64) {
	var results []DivideResult
	var total uint64
	moves := GenerateMoves(p, Legal)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.ApplyMove(m)
		var nodes uint64
		if depth > 1 {
			nodes = Perft(p, depth-1)
		} else {
			nodes = 1
		}
		p.UndoMove()
		results = append(results, DivideResult{MoveUci: m.StringUci(), Nodes: nodes})
		total += nodes
	}
	return results, total
}

// RunAndPrint runs Divide at depth and prints a per-root-move breakdown
// followed by the total, in the teacher's locale-formatted reporting
// style, timing the run for a nodes-per-second figure.
func RunAndPrint(p *position.Position, depth int) uint64 {
	out.Printf("Performing PERFT divide for depth %d\n", depth)
	out.Printf("FEN: %s\n", p.ToFen())
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	results, total := Divide(p, depth)
	elapsed := time.Since(start)

	for _, r := range results {
		out.Printf("%-6s: %s\n", r.MoveUci, util.FormatUint(r.Nodes))
	}
	out.Printf("-----------------------------------------\n")
	out.Printf("Time : %s\n", elapsed)
	out.Printf("Nodes: %s\n", util.FormatUint(total))
	out.Printf("NPS  : %s\n", util.FormatUint(util.Nps(total, elapsed)))
	return total
}
