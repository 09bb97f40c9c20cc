package main

import (
	"log"

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

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log.Printf("%+v", cfg)

	net, err := evalbuilder.Build(cfg.Backend, nil,
		network.Options{network.OptionInputMode: cfg.InputMode})
	if err != nil {
		return err
	}
	log.Println("backend ready",
		"backends", evalbuilder.Names(),
		"capabilities", net.Capabilities())

	var router = newRouter(net)
	log.Println("listening", "port", cfg.Port)
	return router.Run(":" + cfg.Port)
}
