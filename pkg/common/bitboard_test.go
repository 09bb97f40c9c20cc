package common

import "testing"

func TestMoreThanOne(t *testing.T) {
	type args struct {
		bb uint64
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"empty", args{0}, false},
		{"one", args{SquareMask[SquareE4]}, false},
		{"two", args{SquareMask[SquareE4] | SquareMask[SquareA1]}, true},
		{"rank", args{Rank2Mask}, true},
		{"full", args{^uint64(0)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoreThanOne(tt.args.bb); got != tt.want {
				t.Errorf("MoreThanOne() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlipVertical(t *testing.T) {
	type args struct {
		bb uint64
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		{"empty", args{0}, 0},
		{"full", args{^uint64(0)}, ^uint64(0)},
		{"rank2", args{Rank2Mask}, Rank7Mask},
		{"fileA", args{FileAMask}, FileAMask},
		{"e1", args{SquareMask[SquareE1]}, SquareMask[SquareE8]},
		{"corners", args{SquareMask[SquareA1] | SquareMask[SquareH8]},
			SquareMask[SquareA8] | SquareMask[SquareH1]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlipVertical(tt.args.bb); got != tt.want {
				t.Errorf("FlipVertical() = %v, want %v", got, tt.want)
			}
			if got := FlipVertical(FlipVertical(tt.args.bb)); got != tt.args.bb {
				t.Errorf("FlipVertical() applied twice = %v, want %v", got, tt.args.bb)
			}
		})
	}
}

func TestFlipVerticalMatchesFlipSquare(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		var got = FlipVertical(SquareMask[sq])
		var want = SquareMask[FlipSquare(sq)]
		if got != want {
			t.Errorf("FlipVertical(%v) = %v, want %v", SquareName(sq), got, want)
		}
	}
}

func TestSquares(t *testing.T) {
	var bb = SquareMask[SquareG8] | SquareMask[SquareB1] | SquareMask[SquareE4]
	var squares = Squares(bb)
	var want = []int{SquareB1, SquareE4, SquareG8}
	if len(squares) != len(want) {
		t.Fatalf("Squares() = %v, want %v", squares, want)
	}
	for i := range want {
		if squares[i] != want[i] {
			t.Errorf("Squares()[%v] = %v, want %v", i, squares[i], want[i])
		}
	}
	if len(Squares(0)) != 0 {
		t.Errorf("Squares(0) = %v, want empty", Squares(0))
	}
}

func TestFirstOne(t *testing.T) {
	tests := []struct {
		name string
		bb   uint64
		want int
	}{
		{"a1", SquareMask[SquareA1], SquareA1},
		{"h8", SquareMask[SquareH8], SquareH8},
		{"rank2", Rank2Mask, SquareA2},
		{"fileH", FileHMask, SquareH1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstOne(tt.bb); got != tt.want {
				t.Errorf("FirstOne() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPopCount(t *testing.T) {
	tests := []struct {
		name string
		bb   uint64
		want int
	}{
		{"empty", 0, 0},
		{"rank", Rank5Mask, 8},
		{"full", ^uint64(0), 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PopCount(tt.bb); got != tt.want {
				t.Errorf("PopCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBitboardString(t *testing.T) {
	var bb = SquareMask[SquareE4] | SquareMask[SquareA1]
	if got, want := BitboardString(bb), "a1,e4"; got != want {
		t.Errorf("BitboardString() = %v, want %v", got, want)
	}
	if got := BitboardString(0); got != "" {
		t.Errorf("BitboardString(0) = %v, want empty", got)
	}
}
