package math

import (
	stdmath "math"
	"testing"
)

func TestSigmoid(t *testing.T) {
	if got := Sigmoid(0); got != 0.5 {
		t.Errorf("Sigmoid(0) = %v, want 0.5", got)
	}
	if got := Sigmoid(10); got <= 0.99 || got >= 1 {
		t.Errorf("Sigmoid(10) = %v, want just under 1", got)
	}
	if got := Sigmoid(-10); got >= 0.01 || got <= 0 {
		t.Errorf("Sigmoid(-10) = %v, want just over 0", got)
	}
}

func TestReverseSigmoid(t *testing.T) {
	for _, x := range []float64{-3, -0.5, 0, 0.25, 2} {
		var got = ReverseSigmoid(Sigmoid(x))
		if stdmath.Abs(got-x) > 1e-9 {
			t.Errorf("ReverseSigmoid(Sigmoid(%v)) = %v", x, got)
		}
	}
}
