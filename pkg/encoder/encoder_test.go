package encoder

import (
	"testing"

	"github.com/ArtemKovalev/SlonGo/pkg/common"
	"github.com/ArtemKovalev/SlonGo/pkg/network"
	"github.com/dylhunn/dragontoothmg"

	trivial "github.com/ArtemKovalev/SlonGo/pkg/eval/trivial"
)

func mustEncode(t *testing.T, fen string) network.InputPlanes {
	t.Helper()
	var planes, err = EncodeFEN(fen)
	if err != nil {
		t.Fatalf("EncodeFEN(%q) error: %v", fen, err)
	}
	return planes
}

func TestEncodeStartingPosition(t *testing.T) {
	var planes = mustEncode(t, dragontoothmg.Startpos)
	if len(planes) != network.TotalPlanes {
		t.Fatalf("len = %v, want %v", len(planes), network.TotalPlanes)
	}

	var wantMasks = map[int]uint64{
		network.PlaneOurPawns:     common.Rank2Mask,
		network.PlaneOurKnights:   common.SquareMask[common.SquareB1] | common.SquareMask[common.SquareG1],
		network.PlaneOurBishops:   common.SquareMask[common.SquareC1] | common.SquareMask[common.SquareF1],
		network.PlaneOurRooks:     common.SquareMask[common.SquareA1] | common.SquareMask[common.SquareH1],
		network.PlaneOurQueens:    common.SquareMask[common.SquareD1],
		network.PlaneOurKings:     common.SquareMask[common.SquareE1],
		network.PlaneTheirPawns:   common.Rank7Mask,
		network.PlaneTheirKnights: common.SquareMask[common.SquareB8] | common.SquareMask[common.SquareG8],
		network.PlaneTheirBishops: common.SquareMask[common.SquareC8] | common.SquareMask[common.SquareF8],
		network.PlaneTheirRooks:   common.SquareMask[common.SquareA8] | common.SquareMask[common.SquareH8],
		network.PlaneTheirQueens:  common.SquareMask[common.SquareD8],
		network.PlaneTheirKings:   common.SquareMask[common.SquareE8],
	}
	for plane, want := range wantMasks {
		if got := planes[plane].Mask; got != want {
			t.Errorf("plane %v mask = %v (%v), want %v (%v)", plane,
				got, common.BitboardString(got), want, common.BitboardString(want))
		}
	}

	// History beyond the newest step and the repetition plane stay empty.
	for i := network.PlaneRepetitions; i < network.AuxPlaneBase; i++ {
		if planes[i].Mask != 0 {
			t.Errorf("plane %v mask = %v, want empty", i, planes[i].Mask)
		}
	}

	var full = ^uint64(0)
	for _, plane := range []int{
		network.PlaneCastleOurQueenside, network.PlaneCastleOurKingside,
		network.PlaneCastleTheirQueenside, network.PlaneCastleTheirKingside,
	} {
		if planes[plane].Mask != full {
			t.Errorf("castling plane %v not set", plane)
		}
	}
	if planes[network.PlaneBlackToMove].Mask != 0 {
		t.Errorf("black-to-move plane set for white to move")
	}
	if planes[network.PlaneRule50].Mask != full || planes[network.PlaneRule50].Value != 0 {
		t.Errorf("rule50 plane = %+v, want full mask, value 0", planes[network.PlaneRule50])
	}
	if planes[network.PlaneZeros].Mask != 0 {
		t.Errorf("zeros plane mask = %v, want empty", planes[network.PlaneZeros].Mask)
	}
	if planes[network.PlaneAllOnes].Mask != full {
		t.Errorf("all-ones plane not set")
	}
}

func TestEncodeBlackToMove(t *testing.T) {
	var planes = mustEncode(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	// Black plays up the board now: its pawns land on the second rank.
	if got := planes[network.PlaneOurPawns].Mask; got != common.Rank2Mask {
		t.Errorf("our pawns = %v, want rank 2", common.BitboardString(got))
	}
	if got := planes[network.PlaneOurKings].Mask; got != common.SquareMask[common.SquareE1] {
		t.Errorf("our king = %v, want e1", common.BitboardString(got))
	}

	var whitePawns = common.Rank2Mask&^common.SquareMask[common.SquareE2] |
		common.SquareMask[common.SquareE4]
	if got, want := planes[network.PlaneTheirPawns].Mask, common.FlipVertical(whitePawns); got != want {
		t.Errorf("their pawns = %v, want %v",
			common.BitboardString(got), common.BitboardString(want))
	}
	if planes[network.PlaneBlackToMove].Mask != ^uint64(0) {
		t.Errorf("black-to-move plane not set")
	}
}

func TestEncodeCastlingSides(t *testing.T) {
	// White keeps kingside rights, black keeps queenside. With black to
	// move the planes swap: ours carry black's rights.
	var planes = mustEncode(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b Kq - 4 10")

	var full = ^uint64(0)
	tests := []struct {
		name  string
		plane int
		want  uint64
	}{
		{"our queenside", network.PlaneCastleOurQueenside, full},
		{"our kingside", network.PlaneCastleOurKingside, 0},
		{"their queenside", network.PlaneCastleTheirQueenside, 0},
		{"their kingside", network.PlaneCastleTheirKingside, full},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := planes[tt.plane].Mask; got != tt.want {
				t.Errorf("mask = %v, want %v", got, tt.want)
			}
		})
	}
	if planes[network.PlaneRule50].Value != 4 {
		t.Errorf("rule50 value = %v, want 4", planes[network.PlaneRule50].Value)
	}
}

func TestEncodeEPDStyle(t *testing.T) {
	// Four-field strings get the clocks defaulted.
	var planes = mustEncode(t, "8/8/8/4k3/8/8/4K3/8 w - -")
	if got := planes[network.PlaneOurKings].Mask; got != common.SquareMask[common.SquareE2] {
		t.Errorf("our king = %v, want e2", common.BitboardString(got))
	}
	if got := planes[network.PlaneTheirKings].Mask; got != common.SquareMask[common.SquareE5] {
		t.Errorf("their king = %v, want e5", common.BitboardString(got))
	}
	if planes[network.PlaneRule50].Value != 0 {
		t.Errorf("rule50 value = %v, want 0", planes[network.PlaneRule50].Value)
	}
}

func TestEncodeFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few fields", "8/8/8/8/8/8/8/8 w -"},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"rank too long", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"rank too short", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece", "8/8/8/8/3x4/8/8/8 w - - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1"},
		{"bad en passant", "8/8/8/8/8/8/8/8 w - e9 0 1"},
		{"short en passant", "8/8/8/8/8/8/8/8 w - e 0 1"},
		{"bad halfmove", "8/8/8/8/8/8/8/8 w - - abc 1"},
		{"negative halfmove", "8/8/8/8/8/8/8/8 w - - -3 1"},
		{"bad move number", "8/8/8/8/8/8/8/8 w - - 0 x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EncodeFEN(tt.fen); err == nil {
				t.Errorf("EncodeFEN(%q) succeeded, want error", tt.fen)
			}
		})
	}
}

func TestParseCastlingRights(t *testing.T) {
	var rights, err = ParseCastlingRights("KQkq")
	if err != nil {
		t.Fatalf("ParseCastlingRights error: %v", err)
	}
	if !rights.WhiteKingside || !rights.WhiteQueenside || !rights.BlackKingside || !rights.BlackQueenside {
		t.Errorf("rights = %+v, want all set", rights)
	}
	rights, err = ParseCastlingRights("-")
	if err != nil {
		t.Fatalf("ParseCastlingRights(-) error: %v", err)
	}
	if rights != (CastlingRights{}) {
		t.Errorf("rights = %+v, want none", rights)
	}
}

func TestEncodeIntoBackend(t *testing.T) {
	var c = trivial.NewNetwork(nil).NewComputation()
	c.AddInput(mustEncode(t, dragontoothmg.Startpos))
	c.Compute()
	var v = c.Value(0)
	if v < -1e-6 || v > 1e-6 {
		t.Errorf("starting position value = %v, want 0", v)
	}
}
