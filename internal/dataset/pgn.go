package dataset

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/notnil/chess"
)

// WalkGames streams raw PGN game texts out of a file. A new game starts at
// a tag line following a blank line.
func WalkGames(ctx context.Context, path string, fn func(raw string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var sb = &strings.Builder{}
	var isEmptyPrevLine bool

	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		var line = scanner.Text()
		if strings.HasPrefix(line, "[") && isEmptyPrevLine && sb.Len() != 0 {
			if err := fn(sb.String()); err != nil {
				return err
			}
			sb = &strings.Builder{}
		}
		sb.WriteString(line)
		sb.WriteString("\n")
		isEmptyPrevLine = strings.TrimSpace(line) == ""
	}
	if scanner.Err() != nil {
		return scanner.Err()
	}

	if strings.TrimSpace(sb.String()) != "" {
		return fn(sb.String())
	}
	return nil
}

// GamePositions replays one game and returns the FEN of every position it
// visits, the starting position included.
func GamePositions(raw string) ([]string, error) {
	var game = chess.NewGame()
	if err := game.UnmarshalText([]byte(raw)); err != nil {
		return nil, fmt.Errorf("dataset: decode pgn: %w", err)
	}
	var positions = game.Positions()
	var fens = make([]string, len(positions))
	for i, pos := range positions {
		fens[i] = pos.String()
	}
	return fens, nil
}

func walkPgnPositions(ctx context.Context, path string, fn func(fen string) error) error {
	return WalkGames(ctx, path, func(raw string) error {
		var fens, err = GamePositions(raw)
		if err != nil {
			log.Println("skip game",
				"file", path,
				"err", err)
			return nil
		}
		for _, fen := range fens {
			if err := fn(fen); err != nil {
				return err
			}
		}
		return nil
	})
}
