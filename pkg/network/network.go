// Package network defines the contract between position encoders and
// evaluation backends: the classical input-plane layout, the capability
// descriptors and the backend registry.
package network

// The classical input format packs 8 history steps of 13 planes each,
// followed by 8 auxiliary planes.
const (
	PlanesPerHistoryStep = 13
	HistorySteps         = 8
	AuxPlaneBase         = PlanesPerHistoryStep * HistorySteps
	TotalPlanes          = AuxPlaneBase + 8
)

// Plane indexes of the newest history step. The first six planes hold the
// side to move's pieces, the next six the opponent's, both oriented so the
// side to move plays up the board. Opponent planes are not mirrored back;
// backends reflect them as needed.
const (
	PlaneOurPawns = iota
	PlaneOurKnights
	PlaneOurBishops
	PlaneOurRooks
	PlaneOurQueens
	PlaneOurKings
	PlaneTheirPawns
	PlaneTheirKnights
	PlaneTheirBishops
	PlaneTheirRooks
	PlaneTheirQueens
	PlaneTheirKings
	PlaneRepetitions
)

// Auxiliary plane indexes.
const (
	PlaneCastleOurQueenside = AuxPlaneBase + iota
	PlaneCastleOurKingside
	PlaneCastleTheirQueenside
	PlaneCastleTheirKingside
	PlaneBlackToMove
	PlaneRule50
	PlaneZeros
	PlaneAllOnes
)

// PolicyMoves is the size of the closed move-id space the policy head is
// indexed by. The move encoding itself lives with the callers; backends
// only promise a logit per id in [0, PolicyMoves).
const PolicyMoves = 1858

// InputPlane is one 8x8 input feature: a bitboard of squares where the
// feature fires plus the value it fires with. Piece planes fire with 1;
// scalar planes set every square and carry the scalar in Value.
type InputPlane struct {
	Mask  uint64
	Value float32
}

// SetAll turns the whole plane on, keeping its value.
func (p *InputPlane) SetAll() {
	p.Mask = ^uint64(0)
}

// Fill turns the whole plane on with the given value.
func (p *InputPlane) Fill(value float32) {
	p.Mask = ^uint64(0)
	p.Value = value
}

type InputPlanes []InputPlane

// NewInputPlanes allocates an empty plane stack with every Value at 1, the
// weight piece planes fire with.
func NewInputPlanes() InputPlanes {
	var planes = make(InputPlanes, TotalPlanes)
	for i := range planes {
		planes[i].Value = 1
	}
	return planes
}

// Computation is one evaluation session: queue positions with AddInput,
// run the batch with Compute, then read the results by batch index.
// A Computation is not safe for concurrent use; keep one per goroutine.
type Computation interface {
	// AddInput queues one position. It panics once Compute has run.
	AddInput(planes InputPlanes)
	// Compute evaluates everything queued so far and seals the session.
	Compute()
	// BatchSize reports how many positions are queued.
	BatchSize() int
	// Value is the expected outcome in [-1, 1] for batch entry i, from the
	// side to move's point of view.
	Value(i int) float32
	// DrawProbability is the draw share of the outcome for batch entry i.
	DrawProbability(i int) float32
	// MovesLeft estimates the remaining game length for batch entry i.
	MovesLeft(i int) float32
	// PolicyLogit is the raw prior logit of move id moveID for batch entry i.
	PolicyLogit(i int, moveID int) float32
}

// Network builds computations and reports what the backend consumes and
// produces. Implementations are safe for concurrent use.
type Network interface {
	NewComputation() Computation
	Capabilities() Capabilities
}

type InputFormat int

const (
	InputUnknown           InputFormat = 0
	InputClassical112Plane InputFormat = 1
)

type OutputFormat int

const (
	OutputUnknown   OutputFormat = 0
	OutputClassical OutputFormat = 1
	OutputWDL       OutputFormat = 2
)

type MovesLeftFormat int

const (
	MovesLeftNone MovesLeftFormat = 0
	MovesLeftV1   MovesLeftFormat = 1
)

// Capabilities describes the input format a network accepts and the output
// heads it fills.
type Capabilities struct {
	Input     InputFormat
	Output    OutputFormat
	MovesLeft MovesLeftFormat
}
