package eval

import (
	"io"

	"github.com/ArtemKovalev/SlonGo/internal/math"
	"github.com/ArtemKovalev/SlonGo/pkg/common"
	"github.com/ArtemKovalev/SlonGo/pkg/network"
)

// Scale that turns a centipawn margin into a win probability.
const sigmoidScale = 3.5 / 512

// Network counts material from the input planes and nothing else. It is a
// baseline to hold the other backends against.
type Network struct {
	caps network.Capabilities
}

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

func (c *computation) AddInput(planes network.InputPlanes) {
	if c.computed {
		panic("material: AddInput after Compute")
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

// The policy head is a uniform prior: every legal move gets the same
// logit.
func (c *computation) PolicyLogit(i, moveID int) float32 {
	if moveID < 0 || moveID >= network.PolicyMoves {
		panic("material: policy id out of range")
	}
	return 0
}

func evaluate(input network.InputPlanes) float32 {
	var eval = 100*(common.PopCount(input[network.PlaneOurPawns].Mask)-common.PopCount(input[network.PlaneTheirPawns].Mask)) +
		400*(common.PopCount(input[network.PlaneOurKnights].Mask)-common.PopCount(input[network.PlaneTheirKnights].Mask)) +
		400*(common.PopCount(input[network.PlaneOurBishops].Mask)-common.PopCount(input[network.PlaneTheirBishops].Mask)) +
		600*(common.PopCount(input[network.PlaneOurRooks].Mask)-common.PopCount(input[network.PlaneTheirRooks].Mask)) +
		1200*(common.PopCount(input[network.PlaneOurQueens].Mask)-common.PopCount(input[network.PlaneTheirQueens].Mask))
	return float32(2*math.Sigmoid(sigmoidScale*float64(eval)) - 1)
}

func init() {
	network.Register("material", 2, func(weights io.Reader, opts network.Options) (network.Network, error) {
		return NewNetwork(opts), nil
	})
}
