package eval

import (
	"io"

	"github.com/ArtemKovalev/SlonGo/internal/math"
	"github.com/ArtemKovalev/SlonGo/pkg/common"
	"github.com/ArtemKovalev/SlonGo/pkg/network"
)

// Network scores positions with the piece-square tables in this package.
// It keeps no state of its own, so one instance serves any number of
// goroutines; each computation session belongs to a single caller.
type Network struct {
	caps network.Capabilities
}

// NewNetwork builds the backend. The reported input format is taken from
// the input_mode option; everything else is fixed.
func NewNetwork(opts network.Options) *Network {
	return &Network{
		caps: network.Capabilities{
			Input: network.InputFormat(opts.IntOr(network.OptionInputMode,
				int(network.InputClassical112Plane))),
			Output:    network.OutputClassical,
			MovesLeft: network.MovesLeftNone,
		},
	}
}

func (n *Network) Capabilities() network.Capabilities {
	return n.caps
}

func (n *Network) NewComputation() network.Computation {
	return &computation{}
}

type computation struct {
	values   []float32
	computed bool
}

// AddInput scores the position right away, so Compute has nothing left to
// do by the time it runs.
func (c *computation) AddInput(planes network.InputPlanes) {
	if c.computed {
		panic("trivial: AddInput after Compute")
	}
	c.values = append(c.values, evaluate(planes))
}

func (c *computation) Compute() {
	c.computed = true
}

func (c *computation) BatchSize() int {
	return len(c.values)
}

func (c *computation) Value(i int) float32 {
	return c.values[i]
}

func (c *computation) DrawProbability(i int) float32 {
	return 0
}

func (c *computation) MovesLeft(i int) float32 {
	return 0
}

func (c *computation) PolicyLogit(i, moveID int) float32 {
	return logPolicy[moveID]
}

var pieceTables = [...]*[64]float32{
	&pawnTable, &knightTable, &bishopTable, &rookTable, &queenTable,
}

func evaluate(input network.InputPlanes) float32 {
	var q float32
	for i, table := range pieceTables {
		q += dotProduct(input[network.PlaneOurPawns+i].Mask, table)
		q -= dotProduct(common.FlipVertical(input[network.PlaneTheirPawns+i].Mask), table)
	}
	var kings = &kingTable
	if isEndgame(input) {
		kings = &kingEndgameTable
	}
	q += dotProduct(input[network.PlaneOurKings].Mask, kings)
	q -= dotProduct(common.FlipVertical(input[network.PlaneTheirKings].Mask), kings)
	// The raw sum lives in a narrow band around zero; stretch it by 10
	// before squashing or every score lands next to the draw mark.
	return float32(2*math.Sigmoid(10*float64(q)) - 1)
}

func dotProduct(b uint64, weights *[64]float32) float32 {
	var result float32
	for x := b; x != 0; x &= x - 1 {
		result += weights[common.FirstOne(x)]
	}
	return result
}

// A side is down to endgame material once its queens are gone, or once it
// keeps no rooks and at most one minor piece.
func endgameMaterial(queens, rooks, minors uint64) bool {
	return queens == 0 || (rooks == 0 && !common.MoreThanOne(minors))
}

// The kings move to their endgame table only when both sides are down to
// endgame material; until then both stay on the midgame table.
func isEndgame(input network.InputPlanes) bool {
	return endgameMaterial(
		input[network.PlaneOurQueens].Mask,
		input[network.PlaneOurRooks].Mask,
		input[network.PlaneOurKnights].Mask|input[network.PlaneOurBishops].Mask) &&
		endgameMaterial(
			input[network.PlaneTheirQueens].Mask,
			input[network.PlaneTheirRooks].Mask,
			input[network.PlaneTheirKnights].Mask|input[network.PlaneTheirBishops].Mask)
}

func init() {
	network.Register("trivial", 4, func(weights io.Reader, opts network.Options) (network.Network, error) {
		return NewNetwork(opts), nil
	})
}
