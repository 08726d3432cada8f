package main

import (
	"log"

	"pong/config"
	"pong/engine"
	"pong/game"
)

func main() {
	cfg := config.Load()

	eng, err := engine.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Engine initialization failed: %v", err)
	}

	g := game.NewGame(cfg, eng)
	err = g.Run()
	eng.Shutdown()
	if err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}
	log.Println("Session ended")
}
