package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/notnil/chess"

	"github.com/ArtemKovalev/SlonGo/internal/evalbuilder"
	"github.com/ArtemKovalev/SlonGo/pkg/encoder"
	"github.com/ArtemKovalev/SlonGo/pkg/network"
)

type server struct {
	net network.Network
}

func newRouter(net network.Network) *gin.Engine {
	var s = &server{net: net}

	var router = gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", s.health)
	router.POST("/eval", s.evalPosition)
	router.POST("/analyze", s.analyzeGame)
	return router
}

func (s *server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"backends": evalbuilder.Names(),
	})
}

type evalRequest struct {
	Fen string `json:"fen" binding:"required"`
}

type evalResponse struct {
	Fen             string  `json:"fen"`
	Value           float32 `json:"value"`
	DrawProbability float32 `json:"draw_probability"`
	MovesLeft       float32 `json:"moves_left"`
}

func (s *server) evalPosition(c *gin.Context) {
	var req evalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fen is required"})
		return
	}
	var resp, err = s.evalFen(req.Fen)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *server) evalFen(fen string) (evalResponse, error) {
	var planes, err = encoder.EncodeFEN(fen)
	if err != nil {
		return evalResponse{}, err
	}
	var comp = s.net.NewComputation()
	comp.AddInput(planes)
	comp.Compute()
	return evalResponse{
		Fen:             fen,
		Value:           comp.Value(0),
		DrawProbability: comp.DrawProbability(0),
		MovesLeft:       comp.MovesLeft(0),
	}, nil
}

type analyzeRequest struct {
	Pgn string `json:"pgn" binding:"required"`
}

type positionEval struct {
	MoveNumber int     `json:"move_number"`
	SideToMove string  `json:"side_to_move"`
	Fen        string  `json:"fen"`
	Value      float32 `json:"value"`
}

func (s *server) analyzeGame(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pgn is required"})
		return
	}

	var game = chess.NewGame()
	if err := game.UnmarshalText([]byte(req.Pgn)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pgn"})
		return
	}

	var positions = game.Positions()
	var comp = s.net.NewComputation()
	var fens = make([]string, len(positions))
	for i, pos := range positions {
		fens[i] = pos.String()
		var planes, err = encoder.EncodeFEN(fens[i])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		comp.AddInput(planes)
	}
	comp.Compute()

	var results = make([]positionEval, len(positions))
	for i, fen := range fens {
		results[i] = positionEval{
			MoveNumber: moveNumber(fen),
			SideToMove: sideToMove(fen),
			Fen:        fen,
			Value:      comp.Value(i),
		}
	}
	c.JSON(http.StatusOK, gin.H{"positions": results})
}

func moveNumber(fen string) int {
	var fields = strings.Fields(fen)
	if len(fields) < 6 {
		return 0
	}
	var n, _ = strconv.Atoi(fields[5])
	return n
}

func sideToMove(fen string) string {
	var fields = strings.Fields(fen)
	if len(fields) >= 2 && fields[1] == "b" {
		return "black"
	}
	return "white"
}
