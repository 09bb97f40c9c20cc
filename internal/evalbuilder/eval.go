// Package evalbuilder links every backend of this repo into a binary and
// builds one by key.
package evalbuilder

import (
	"io"

	"github.com/ArtemKovalev/SlonGo/pkg/network"

	_ "github.com/ArtemKovalev/SlonGo/pkg/eval/material"
	_ "github.com/ArtemKovalev/SlonGo/pkg/eval/trivial"
)

// Build constructs the backend registered under key; the empty key picks
// the best one by priority. A weights payload is passed through to the
// backend, which is free to ignore it.
func Build(key string, weights io.Reader, opts network.Options) (network.Network, error) {
	return network.Create(key, weights, opts)
}

// Names lists the linked backends, best first.
func Names() []string {
	return network.Names()
}
