package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/ArtemKovalev/SlonGo/internal/evalbuilder"
	"github.com/ArtemKovalev/SlonGo/internal/math"
	"github.com/ArtemKovalev/SlonGo/pkg/encoder"
	"github.com/ArtemKovalev/SlonGo/pkg/network"
)

const name = "Slon"

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

type Settings struct {
	Backend   string
	InputMode int
	Weights   string
	Policy    string
}

func run() error {
	var settings = Settings{
		InputMode: int(network.InputClassical112Plane),
	}
	flag.StringVar(&settings.Backend, "backend", settings.Backend,
		"evaluation backend, empty picks the best one")
	flag.IntVar(&settings.InputMode, "input-mode", settings.InputMode,
		"input format the backend reports")
	flag.StringVar(&settings.Weights, "weights", settings.Weights,
		"weights file handed to the backend (may be ignored)")
	flag.StringVar(&settings.Policy, "policy", settings.Policy,
		"comma separated move ids to sample from the policy head")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"Backends", evalbuilder.Names(),
	)
	logger.Printf("%+v", settings)

	policyIDs, err := parsePolicyIDs(settings.Policy)
	if err != nil {
		return err
	}

	var weights io.Reader
	if settings.Weights != "" {
		file, err := os.Open(settings.Weights)
		if err != nil {
			return err
		}
		defer file.Close()
		weights = file
	}

	net, err := evalbuilder.Build(settings.Backend, weights,
		network.Options{network.OptionInputMode: settings.InputMode})
	if err != nil {
		return err
	}
	logger.Println("backend ready",
		"Capabilities", fmt.Sprintf("%+v", net.Capabilities()))

	fens, err := collectFens(flag.Args())
	if err != nil {
		return err
	}
	if len(fens) == 0 {
		return fmt.Errorf("no positions: pass FEN arguments or '-' to read stdin")
	}

	var c = net.NewComputation()
	for _, fen := range fens {
		planes, err := encoder.EncodeFEN(fen)
		if err != nil {
			return err
		}
		c.AddInput(planes)
	}
	c.Compute()

	var w = bufio.NewWriter(os.Stdout)
	for i, fen := range fens {
		var value = c.Value(i)
		fmt.Fprintf(w, "%v;%v;%v;%v;%v", fen, value, centipawns(value),
			c.DrawProbability(i), c.MovesLeft(i))
		for _, id := range policyIDs {
			fmt.Fprintf(w, ";%v=%v", id, c.PolicyLogit(i, id))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func collectFens(args []string) ([]string, error) {
	if len(args) != 1 || args[0] != "-" {
		return args, nil
	}
	var fens []string
	var scanner = bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line != "" {
			fens = append(fens, line)
		}
	}
	return fens, scanner.Err()
}

func parsePolicyIDs(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var result []int
	for _, part := range strings.Split(s, ",") {
		var id, err = strconv.Atoi(strings.TrimSpace(part))
		if err != nil || id < 0 || id >= network.PolicyMoves {
			return nil, fmt.Errorf("bad policy move id %q", part)
		}
		result = append(result, id)
	}
	return result, nil
}

// centipawns converts a squashed value back to the centipawn scale the
// material backend squashes from.
func centipawns(value float32) int {
	var p = min(max((float64(value)+1)/2, 1e-6), 1-1e-6)
	return int(math.ReverseSigmoid(p) * 512 / 3.5)
}
