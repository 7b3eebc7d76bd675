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
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessgen/internal/config"
	myLogging "github.com/frankkopp/chessgen/internal/logging"
)

var testLog *logging.Logger

// make tests run in the project's root directory, where config.toml
// (if present) would live.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	testLog = myLogging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestBitboardHasPushPop(t *testing.T) {
	b := BbZero
	assert.False(t, b.Has(SqE4))
	b = b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	b = b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestBitboardLsbMsb(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())

	b := SqA1.Bb() | SqD4.Bb() | SqH8.Bb()
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqB2.Bb() | SqD4.Bb() | SqG6.Bb()
	var got []Square
	for b != BbZero {
		got = append(got, b.PopLsb())
	}
	assert.Equal(t, []Square{SqB2, SqD4, SqG6}, got)
	assert.Equal(t, BbZero, b)
}

func TestBitboardPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 3, (SqA1.Bb() | SqB2.Bb() | SqC3.Bb()).PopCount())
}

func TestShiftBitboard(t *testing.T) {
	assert.Equal(t, SqE5.Bb(), ShiftBitboard(SqE4.Bb(), North))
	assert.Equal(t, SqE3.Bb(), ShiftBitboard(SqE4.Bb(), South))
	assert.Equal(t, SqF4.Bb(), ShiftBitboard(SqE4.Bb(), East))
	assert.Equal(t, SqD4.Bb(), ShiftBitboard(SqE4.Bb(), West))

	// shifting off the edge drops the square rather than wrapping
	assert.Equal(t, BbZero, ShiftBitboard(SqH4.Bb(), East))
	assert.Equal(t, BbZero, ShiftBitboard(SqA4.Bb(), West))
}

func TestFileAndRankBb(t *testing.T) {
	assert.True(t, FileABb.Has(SqA1))
	assert.True(t, FileABb.Has(SqA8))
	assert.False(t, FileABb.Has(SqB1))

	assert.True(t, Rank1Bb.Has(SqA1))
	assert.True(t, Rank1Bb.Has(SqH1))
	assert.False(t, Rank1Bb.Has(SqA2))
}

func TestBitboardString(t *testing.T) {
	testLog.Debugf("zero bitboard: %s", BbZero.String())
	assert.Equal(t, "0x0000000000000000", BbZero.String())
}
