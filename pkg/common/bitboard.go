package common

import (
	"math/bits"
)

const (
	FileAMask uint64 = 0x0101010101010101 << iota
	FileBMask
	FileCMask
	FileDMask
	FileEMask
	FileFMask
	FileGMask
	FileHMask
)

const (
	Rank1Mask uint64 = 0xFF << (8 * iota)
	Rank2Mask
	Rank3Mask
	Rank4Mask
	Rank5Mask
	Rank6Mask
	Rank7Mask
	Rank8Mask
)

var SquareMask [64]uint64

func init() {
	for sq := 0; sq < 64; sq++ {
		SquareMask[sq] = 1 << uint(sq)
	}
}

func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

func FirstOne(b uint64) int {
	return bits.TrailingZeros64(b)
}

func MoreThanOne(b uint64) bool {
	return b != 0 && ((b-1)&b) != 0
}

// FlipVertical mirrors a bitboard across the horizontal axis of the board:
// bit sq moves to bit FlipSquare(sq). One rank lives in each byte, so
// reversing the byte order is exactly that mirror.
func FlipVertical(b uint64) uint64 {
	return bits.ReverseBytes64(b)
}

// Squares lists the set squares of a bitboard in ascending order.
func Squares(b uint64) []int {
	var result = make([]int, 0, PopCount(b))
	for x := b; x != 0; x &= x - 1 {
		result = append(result, FirstOne(x))
	}
	return result
}

func BitboardString(b uint64) string {
	var s string
	for x := b; x != 0; x &= x - 1 {
		if s != "" {
			s += ","
		}
		s += SquareName(FirstOne(x))
	}
	return s
}
