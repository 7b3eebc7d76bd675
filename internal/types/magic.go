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

import "github.com/frankkopp/chessgen/internal/assert"

// rookDirs and bishopDirs are the four ray directions each slider moves along.
var rookDirs = [4]Direction{North, East, South, West}
var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// rookMagicNumbers and bishopMagicNumbers are the fixed per-square magic
// multipliers used to index each slider's attack table. These are input
// data, not computed: LookupTables construction never searches for a
// magic number, it only walks the carry-rippler subset enumeration below
// to fill each square's Attacks table from the multiplier already fixed
// here.
var rookMagicNumbers = [SqLength]uint64{
	0x8a80104000800020, 0x140002000100040, 0x2801880a0017001, 0x100081001000420,
	0x200020010080420, 0x3001c0002010008, 0x8480008002000100, 0x2080088004402900,
	0x800098204000, 0x2024401000200040, 0x100802000801000, 0x120800800801000,
	0x208808088000400, 0x2802200800400, 0x2200800100020080, 0x801000060821100,
	0x80044006422000, 0x100808020004000, 0x12108a0010204200, 0x140848010000802,
	0x481828014002800, 0x8094004002004100, 0x4010040010010802, 0x20008806104,
	0x100400080208000, 0x2040002120081000, 0x21200680100081, 0x20100080080080,
	0x2000a00200410, 0x20080800400, 0x80088400100102, 0x80004600042881,
	0x4040008040800020, 0x440003000200801, 0x4200011004500, 0x188020010100100,
	0x14800401802800, 0x2080040080800200, 0x124080204001001, 0x200046502000484,
	0x480400080088020, 0x1000422010034000, 0x30200100110040, 0x100021010009,
	0x2002080100110004, 0x202008004008002, 0x20020004010100, 0x2048440040820001,
	0x101002200408200, 0x40802000401080, 0x4008142004410100, 0x2060820c0120200,
	0x1001004080100, 0x20c020080040080, 0x2935610830022400, 0x44440041009200,
	0x280001040802101, 0x2100190040002085, 0x80c0084100102001, 0x4024081001000421,
	0x20030a0244872, 0x12001008414402, 0x2006104900a0804, 0x1004081002402,
}

var bishopMagicNumbers = [SqLength]uint64{
	0x40040844404084, 0x2004208a004208, 0x10190041080202, 0x108060845042010,
	0x581104180800210, 0x2112080446200010, 0x1080820820060210, 0x3c0808410220200,
	0x4050404440404, 0x21001420088, 0x24d0080801082102, 0x1020a0a020400,
	0x40308200402, 0x4011002100800, 0x401484104104005, 0x801010402020200,
	0x400210c3880100, 0x404022024108200, 0x810018200204102, 0x4002801a02003,
	0x85040820080400, 0x810102c808880400, 0xe900410884800, 0x8002020480840102,
	0x220200865090201, 0x2010100a02021202, 0x152048408022401, 0x20080002081110,
	0x4001001021004000, 0x800040400a011002, 0xe4004081011002, 0x1c004001012080,
	0x8004200962a00220, 0x8422100208500202, 0x2000402200300c08, 0x8646020080080080,
	0x80020a0200100808, 0x2010004880111000, 0x623000a080011400, 0x42008c0340209202,
	0x209188240001000, 0x400408a884001800, 0x110400a6080400, 0x1840060a44020800,
	0x90080104000041, 0x201011000808101, 0x1a2208080504f080, 0x8012020600211212,
	0x500861011240000, 0x180806108200800, 0x4000020e01040044, 0x300000261044000a,
	0x802241102020002, 0x20906061210001, 0x5a84841004010310, 0x4010801011c04,
	0xa010109502200, 0x4a02012000, 0x500201010098b028, 0x8040002811040900,
	0x28000010020204, 0x6000020202d0240, 0x8918844842082200, 0x4010011029020020,
}

// Magic holds the per-square magic bitboard data used to look up a
// slider's attack set from a board occupancy: mask the occupancy down to
// the relevant blocker squares, multiply by the magic number, and shift
// to get a dense index into Attacks.
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index computes the dense table index for the given full-board occupancy.
// https://www.chessprogramming.org/Magic_Bitboards
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	occ >>= m.Shift
	return uint(occ)
}

// slidingAttack computes the true attack set from sq given a full-board
// occupancy, stepping outward along each direction and stopping at (and
// including) the first blocker. Used both to populate a magic's Attacks
// table and, in debug builds, as the ground truth the uniqueness
// assertion verifies every filled entry against.
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			attack = attack.PushSquare(next)
			if occupied.Has(next) {
				break
			}
			s = next
		}
	}
	return attack
}

// buildMagics fills the Magic table for every square for one slider
// (rook or bishop) from the fixed magicNumbers table: the mask and shift
// are derived geometrically from sq (the relevant blocker squares minus
// board edges), the magic number is the corresponding input constant,
// and Attacks is populated by the carry-rippler trick, enumerating every
// subset of the mask exactly once. No magic number is searched for or
// otherwise computed at runtime.
func buildMagics(dirs [4]Direction, magicNumbers [SqLength]uint64) [SqLength]Magic {
	var magics [SqLength]Magic

	for sq := SqA1; sq < SqNone; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(dirs, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())
		m.Number = Bitboard(magicNumbers[sq])
		m.Attacks = make([]Bitboard, 1<<(64-m.Shift))

		// Carry-rippler subset enumeration: b ranges over every subset of
		// m.Mask exactly once, including the empty subset.
		// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		b := Bitboard(0)
		for {
			m.Attacks[m.index(b)] = slidingAttack(dirs, sq, b)
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		if assert.DEBUG {
			used := make([]bool, len(m.Attacks))
			b := Bitboard(0)
			for {
				idx := m.index(b)
				assert.Assert(!used[idx], "magic index collision for square %s", sq)
				used[idx] = true
				got := m.Attacks[idx]
				want := slidingAttack(dirs, sq, b)
				assert.Assert(got == want, "magic table collision for square %s", sq)
				b = (b - m.Mask) & m.Mask
				if b == 0 {
					break
				}
			}
		}
	}
	return magics
}
