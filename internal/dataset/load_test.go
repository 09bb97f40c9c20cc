package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	var path = filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWalkLineFile(t *testing.T) {
	var content = startFen + "\n" +
		"# a comment line\n" +
		"\n" +
		"8/8/8/4k3/8/8/4K3/8 w - - bm Kd3; id \"endgame\";\n" +
		"8/8/8/4k3/8/8/4K3/8 b - - 12 60;-0.25;0.5\n" +
		"not a position\n"
	var path = writeFile(t, t.TempDir(), "test.epd", content)

	var fens, err = LoadFens(path)
	if err != nil {
		t.Fatalf("LoadFens error: %v", err)
	}
	var want = []string{
		startFen,
		"8/8/8/4k3/8/8/4K3/8 w - -",
		"8/8/8/4k3/8/8/4K3/8 b - - 12 60",
	}
	if len(fens) != len(want) {
		t.Fatalf("fens = %v, want %v", fens, want)
	}
	for i := range want {
		if fens[i] != want[i] {
			t.Errorf("fens[%v] = %q, want %q", i, fens[i], want[i])
		}
	}
}

const testPgn = `[Event "Test"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 1-0

[Event "Second"]
[Result "1/2-1/2"]

1. d4 d5 1/2-1/2
`

func TestWalkGames(t *testing.T) {
	var path = writeFile(t, t.TempDir(), "games.pgn", testPgn)
	var games []string
	var err = WalkGames(context.Background(), path, func(raw string) error {
		games = append(games, raw)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkGames error: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("got %v games, want 2", len(games))
	}
	if !strings.Contains(games[0], "1. e4 e5") || !strings.Contains(games[1], "1. d4 d5") {
		t.Errorf("games split at the wrong boundary: %q", games)
	}
}

func TestGamePositions(t *testing.T) {
	var raw = "[Event \"Test\"]\n[Result \"1-0\"]\n\n1. e4 e5 2. Nf3 Nc6 1-0\n"
	var fens, err = GamePositions(raw)
	if err != nil {
		t.Fatalf("GamePositions error: %v", err)
	}
	if len(fens) != 5 {
		t.Fatalf("got %v positions, want 5", len(fens))
	}
	if fens[0] != startFen {
		t.Errorf("fens[0] = %q, want starting position", fens[0])
	}
	var wantLast = "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	if fens[4] != wantLast {
		t.Errorf("fens[4] = %q, want %q", fens[4], wantLast)
	}
}

func TestGamePositionsBadPgn(t *testing.T) {
	if _, err := GamePositions("1. zz9 xx8"); err == nil {
		t.Errorf("GamePositions on garbage succeeded")
	}
}

func TestWalkPositionsFolder(t *testing.T) {
	var dir = t.TempDir()
	writeFile(t, dir, "set.fen", startFen+"\n"+startFen+"\n")
	writeFile(t, dir, "games.pgn", "[Event \"Test\"]\n[Result \"1-0\"]\n\n1. e4 e5 1-0\n")
	writeFile(t, dir, "notes.txt", "ignored\n")

	files, err := Files(dir)
	if err != nil {
		t.Fatalf("Files error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Files = %v, want the .fen and .pgn entries", files)
	}

	var count int
	err = WalkPositions(context.Background(), dir, func(fen string) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("WalkPositions error: %v", err)
	}
	// Two line positions plus three positions of the one-move game.
	if count != 5 {
		t.Errorf("walked %v positions, want 5", count)
	}
}

func TestFilesErrors(t *testing.T) {
	if _, err := Files(filepath.Join(t.TempDir(), "missing.fen")); err == nil {
		t.Errorf("Files on a missing path succeeded")
	}
	if _, err := Files(t.TempDir()); err == nil {
		t.Errorf("Files on an empty folder succeeded")
	}
}

func TestWalkPositionsCancelled(t *testing.T) {
	var path = writeFile(t, t.TempDir(), "set.fen", startFen+"\n")
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	if err := WalkPositions(ctx, path, func(string) error { return nil }); err == nil {
		t.Errorf("WalkPositions with cancelled context succeeded")
	}
}
