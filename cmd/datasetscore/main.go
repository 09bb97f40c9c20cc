package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/ArtemKovalev/SlonGo/internal/cache"
	"github.com/ArtemKovalev/SlonGo/internal/evalbuilder"
	"github.com/ArtemKovalev/SlonGo/pkg/network"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

type Settings struct {
	Input     string
	Output    string
	Threads   int
	Backend   string
	InputMode int
	CacheDir  string
	ChunkSize int
}

func run() error {
	curUser, err := user.Current()
	if err != nil {
		return err
	}
	homeDir := curUser.HomeDir
	if homeDir == "" {
		return fmt.Errorf("current user home dir empty")
	}

	var chessDir = filepath.Join(homeDir, "chess")

	var settings = Settings{
		Input:     filepath.Join(chessDir, "pgn"),
		Output:    filepath.Join(chessDir, "scored.txt"),
		Threads:   max(1, runtime.NumCPU()/2),
		Backend:   "",
		InputMode: int(network.InputClassical112Plane),
		ChunkSize: 256,
	}

	flag.StringVar(&settings.Input, "input", settings.Input, "Path to position file or folder with FEN/EPD/PGN files")
	flag.StringVar(&settings.Output, "output", settings.Output, "Path to output file")
	flag.IntVar(&settings.Threads, "threads", settings.Threads, "Number of threads")
	flag.StringVar(&settings.Backend, "backend", settings.Backend, "Backend name, empty picks the best registered one")
	flag.IntVar(&settings.InputMode, "input-mode", settings.InputMode, "Backend input mode")
	flag.StringVar(&settings.CacheDir, "cache", settings.CacheDir, "Path to score cache folder, empty disables the cache")
	flag.IntVar(&settings.ChunkSize, "chunk", settings.ChunkSize, "Positions per computation session")
	flag.Parse()

	log.Printf("%+v", settings)

	if settings.Threads < 1 {
		return fmt.Errorf("at least one thread is expected")
	}
	if settings.ChunkSize < 1 {
		return fmt.Errorf("at least one position per chunk is expected")
	}

	var opts = network.Options{network.OptionInputMode: settings.InputMode}
	net, err := evalbuilder.Build(settings.Backend, nil, opts)
	if err != nil {
		return err
	}

	var store *cache.Store
	if settings.CacheDir != "" {
		store, err = cache.Open(settings.CacheDir)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	var service = &scoreService{
		net:        net,
		store:      store,
		threads:    settings.Threads,
		chunkSize:  settings.ChunkSize,
		inputPath:  settings.Input,
		resultPath: settings.Output,
	}
	return service.Run(context.Background())
}
