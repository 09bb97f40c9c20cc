// Package encoder packs chess positions into the classical 112-plane
// network input.
package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ArtemKovalev/SlonGo/pkg/common"
	"github.com/ArtemKovalev/SlonGo/pkg/network"
	"github.com/dylhunn/dragontoothmg"
)

// CastlingRights carries the castling half of a FEN, white first.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Aux carries the position facts the encoder takes from the FEN text
// rather than from the parsed board.
type Aux struct {
	Castling CastlingRights
	Rule50   int
}

// Encode packs one position into the classical 112-plane input stack:
// twelve piece planes in the newest history slot, then the auxiliary
// planes. Older history slots stay empty; a single position is all the
// backends in this repo read. The board is oriented so the side to move
// plays up; opponent planes are left unmirrored for the backend to
// reflect.
func Encode(b *dragontoothmg.Board, aux Aux) network.InputPlanes {
	var planes = network.NewInputPlanes()

	var our, their = b.White, b.Black
	var ourKingside, ourQueenside = aux.Castling.WhiteKingside, aux.Castling.WhiteQueenside
	var theirKingside, theirQueenside = aux.Castling.BlackKingside, aux.Castling.BlackQueenside
	if !b.Wtomove {
		our, their = flipBitboards(b.Black), flipBitboards(b.White)
		ourKingside, ourQueenside = aux.Castling.BlackKingside, aux.Castling.BlackQueenside
		theirKingside, theirQueenside = aux.Castling.WhiteKingside, aux.Castling.WhiteQueenside
	}

	planes[network.PlaneOurPawns].Mask = our.Pawns
	planes[network.PlaneOurKnights].Mask = our.Knights
	planes[network.PlaneOurBishops].Mask = our.Bishops
	planes[network.PlaneOurRooks].Mask = our.Rooks
	planes[network.PlaneOurQueens].Mask = our.Queens
	planes[network.PlaneOurKings].Mask = our.Kings
	planes[network.PlaneTheirPawns].Mask = their.Pawns
	planes[network.PlaneTheirKnights].Mask = their.Knights
	planes[network.PlaneTheirBishops].Mask = their.Bishops
	planes[network.PlaneTheirRooks].Mask = their.Rooks
	planes[network.PlaneTheirQueens].Mask = their.Queens
	planes[network.PlaneTheirKings].Mask = their.Kings

	if ourQueenside {
		planes[network.PlaneCastleOurQueenside].SetAll()
	}
	if ourKingside {
		planes[network.PlaneCastleOurKingside].SetAll()
	}
	if theirQueenside {
		planes[network.PlaneCastleTheirQueenside].SetAll()
	}
	if theirKingside {
		planes[network.PlaneCastleTheirKingside].SetAll()
	}
	if !b.Wtomove {
		planes[network.PlaneBlackToMove].SetAll()
	}
	planes[network.PlaneRule50].Fill(float32(aux.Rule50))
	planes[network.PlaneAllOnes].SetAll()
	return planes
}

// EncodeFEN parses and encodes a position given as FEN text. The board
// parser trusts its input, so the shape of the string is checked here
// first; four-field EPD-style strings get the missing clocks appended.
func EncodeFEN(fen string) (network.InputPlanes, error) {
	var fields = strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("encoder: fen %q: want at least 4 fields", fen)
	}
	if err := checkPlacement(fields[0]); err != nil {
		return nil, fmt.Errorf("encoder: fen %q: %v", fen, err)
	}
	if fields[1] != "w" && fields[1] != "b" {
		return nil, fmt.Errorf("encoder: fen %q: bad side to move %q", fen, fields[1])
	}
	var aux Aux
	var err error
	aux.Castling, err = ParseCastlingRights(fields[2])
	if err != nil {
		return nil, fmt.Errorf("encoder: fen %q: %v", fen, err)
	}
	if fields[3] != "-" &&
		(len(fields[3]) != 2 || common.ParseSquare(fields[3]) == common.SquareNone) {
		return nil, fmt.Errorf("encoder: fen %q: bad en passant square %q", fen, fields[3])
	}
	if len(fields) >= 5 {
		var n, atoiErr = strconv.Atoi(fields[4])
		if atoiErr != nil || n < 0 {
			return nil, fmt.Errorf("encoder: fen %q: bad halfmove clock %q", fen, fields[4])
		}
		aux.Rule50 = n
	} else {
		fields = append(fields, "0")
	}
	if len(fields) >= 6 {
		if _, atoiErr := strconv.Atoi(fields[5]); atoiErr != nil {
			return nil, fmt.Errorf("encoder: fen %q: bad move number %q", fen, fields[5])
		}
	} else {
		fields = append(fields, "1")
	}

	var board = dragontoothmg.ParseFen(strings.Join(fields[:6], " "))
	return Encode(&board, aux), nil
}

func flipBitboards(bb dragontoothmg.Bitboards) dragontoothmg.Bitboards {
	return dragontoothmg.Bitboards{
		Pawns:   common.FlipVertical(bb.Pawns),
		Knights: common.FlipVertical(bb.Knights),
		Bishops: common.FlipVertical(bb.Bishops),
		Rooks:   common.FlipVertical(bb.Rooks),
		Queens:  common.FlipVertical(bb.Queens),
		Kings:   common.FlipVertical(bb.Kings),
		All:     common.FlipVertical(bb.All),
	}
}

// ParseCastlingRights reads the third FEN field.
func ParseCastlingRights(field string) (CastlingRights, error) {
	var rights CastlingRights
	if field == "-" {
		return rights, nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, fmt.Errorf("bad castling field %q", field)
		}
	}
	return rights, nil
}

func checkPlacement(placement string) error {
	var ranks = strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("want 8 ranks, got %v", len(ranks))
	}
	for _, rank := range ranks {
		var files = 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				files += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				files++
			default:
				return fmt.Errorf("bad piece %q", string(ch))
			}
		}
		if files != 8 {
			return fmt.Errorf("rank %q does not add up to 8 files", rank)
		}
	}
	return nil
}
