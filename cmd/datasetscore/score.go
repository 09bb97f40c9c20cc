package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/ArtemKovalev/SlonGo/internal/cache"
	"github.com/ArtemKovalev/SlonGo/internal/dataset"
	"github.com/ArtemKovalev/SlonGo/pkg/encoder"
	"github.com/ArtemKovalev/SlonGo/pkg/network"

	"golang.org/x/sync/errgroup"
)

type scoredPosition struct {
	fen    string
	value  float32
	cached bool
}

type scoreService struct {
	net        network.Network
	store      *cache.Store
	threads    int
	chunkSize  int
	inputPath  string
	resultPath string
}

func (s *scoreService) Run(ctx context.Context) error {
	log.Println("datasetscore started")
	defer log.Println("datasetscore finished")

	g, ctx := errgroup.WithContext(ctx)

	var fens = make(chan string, 128)
	var results = make(chan scoredPosition, 128)

	g.Go(func() error {
		defer close(fens)
		return dataset.WalkPositions(ctx, s.inputPath, func(fen string) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case fens <- fen:
				return nil
			}
		})
	})

	g.Go(func() error {
		return saveResults(ctx, results, s.resultPath)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < s.threads; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return s.scorePositions(ctx, fens, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	return g.Wait()
}

func (s *scoreService) scorePositions(
	ctx context.Context,
	fens <-chan string,
	results chan<- scoredPosition,
) error {
	var chunk = make([]string, 0, s.chunkSize)
	for fen := range fens {
		if s.store != nil {
			var value, err = s.store.Get(fen)
			if err == nil {
				if err = sendResult(ctx, results, scoredPosition{fen: fen, value: value, cached: true}); err != nil {
					return err
				}
				continue
			}
			if !errors.Is(err, cache.ErrNotFound) {
				return err
			}
		}
		chunk = append(chunk, fen)
		if len(chunk) == s.chunkSize {
			if err := s.flushChunk(ctx, chunk, results); err != nil {
				return err
			}
			chunk = chunk[:0]
		}
	}
	return s.flushChunk(ctx, chunk, results)
}

func (s *scoreService) flushChunk(
	ctx context.Context,
	chunk []string,
	results chan<- scoredPosition,
) error {
	if len(chunk) == 0 {
		return nil
	}
	var comp = s.net.NewComputation()
	var valid = make([]string, 0, len(chunk))
	for _, fen := range chunk {
		var planes, err = encoder.EncodeFEN(fen)
		if err != nil {
			log.Println("skip position", err, fen)
			continue
		}
		comp.AddInput(planes)
		valid = append(valid, fen)
	}
	if len(valid) == 0 {
		return nil
	}
	comp.Compute()
	for i, fen := range valid {
		var value = comp.Value(i)
		if s.store != nil {
			if err := s.store.Put(fen, value); err != nil {
				return err
			}
		}
		if err := sendResult(ctx, results, scoredPosition{fen: fen, value: value}); err != nil {
			return err
		}
	}
	return nil
}

func sendResult(ctx context.Context, results chan<- scoredPosition, result scoredPosition) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case results <- result:
		return nil
	}
}

func saveResults(
	ctx context.Context,
	results <-chan scoredPosition,
	filepath string,
) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	var w = bufio.NewWriter(file)

	var ticker = time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	var positionCount int
	var cacheHits int

	var showProgress = func() {
		log.Printf("Total %v positions, %v cache hits\n", positionCount, cacheHits)
	}

	var repeats = make(map[string]struct{})

LOOP:
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			showProgress()
		case result, resultOk := <-results:
			if !resultOk {
				break LOOP
			}
			if _, found := repeats[result.fen]; found {
				continue
			}
			repeats[result.fen] = struct{}{}
			if result.cached {
				cacheHits++
			}
			var _, err = fmt.Fprintf(w, "%v;%v\n", result.fen, result.value)
			if err != nil {
				return err
			}
			positionCount++
		}
	}

	showProgress()
	return w.Flush()
}
