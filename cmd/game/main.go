package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/drawmoon/simple/internal/application/bootstrap"
	"github.com/drawmoon/simple/internal/application/game"
	"github.com/drawmoon/simple/internal/application/replay"
	"github.com/drawmoon/simple/internal/application/state"
	"github.com/drawmoon/simple/internal/application/system"
	"github.com/drawmoon/simple/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	assetsFlag := flag.String("assets", "", "Sprite sheet directory (default: assets.dir from game.yaml)")
	sceneFlag := flag.String("scene", "menu", "Starting scene: menu or map")
	mapFlag := flag.String("map", "", "Map layout name under maps/ (default: built-in layout)")
	recordFlag := flag.String("record", "", "Record input under this name (e.g., -record walk)")
	flag.Parse()

	sceneID, err := state.ParseSceneID(*sceneFlag)
	if err != nil {
		log.Fatalf("Invalid -scene: %v", err)
	}

	var input system.InputSource = system.NewInputSystem()
	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder(input, sceneID.String())
		input = recorder
		log.Printf("Recording enabled: %s", *recordFlag)
	}

	loader := bootstrap.ConfigLoader(*configFlag)
	env, err := bootstrap.NewEnv(loader, *assetsFlag, input)
	if err != nil {
		log.Fatalf("Failed to load game: %v", err)
	}

	mapCfg, err := bootstrap.LoadMap(loader, *mapFlag)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	initial, err := bootstrap.NewScene(env, sceneID, mapCfg)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	w, h := env.ScreenSize()
	g := game.New(initial, w, h)
	g.SetDT(env.TickDuration())

	// Set up ebiten
	display := env.Config.Display
	ebiten.SetWindowSize(w*display.Scale, h*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	if recorder != nil {
		saveRecording(env.Config, recorder, *recordFlag)
	}
}

// saveRecording stores the recording in the replay store. Failures are
// logged; the session itself already ended cleanly.
func saveRecording(cfg *config.GameConfig, recorder *replay.Recorder, name string) {
	recorder.Stop()

	store, err := replay.OpenStore(cfg.Replay.AppName)
	if err != nil {
		log.Printf("[Replay] %v", err)
		return
	}
	if err := store.Save(name, recorder.Data()); err != nil {
		log.Printf("[Replay] Failed to save %s: %v", name, err)
	}
}
