package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ArtemKovalev/SlonGo/pkg/network"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port      string
	Backend   string
	InputMode int
}

func loadConfig() (Config, error) {
	var cfg = Config{
		Port:      "8080",
		InputMode: int(network.InputClassical112Plane),
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("INPUT_MODE"); v != "" {
		var n, err = strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("bad INPUT_MODE %q", v)
		}
		cfg.InputMode = n
	}
	return cfg, nil
}
