// Command snapshot runs a scene headless for a number of ticks and writes
// the last frame to a PNG file.
//
// Usage:
//
//	go run ./cmd/snapshot -assets gfx -scene menu -ticks 30 -hold right -out menu.png
//	go run ./cmd/snapshot -assets gfx -replay walk -out walk.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/drawmoon/simple/internal/application/bootstrap"
	"github.com/drawmoon/simple/internal/application/game"
	"github.com/drawmoon/simple/internal/application/replay"
	"github.com/drawmoon/simple/internal/application/scene"
	"github.com/drawmoon/simple/internal/application/state"
	"github.com/drawmoon/simple/internal/application/system"
	"github.com/drawmoon/simple/internal/infrastructure/config"
)

type options struct {
	configDir  string
	assetDir   string
	scene      string
	mapName    string
	ticks      int
	hold       string
	replayName string
	replayFile string
	out        string
}

func main() {
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "Config directory (default: embedded configs)")
	flag.StringVar(&opts.assetDir, "assets", "", "Sprite sheet directory (default: assets.dir from game.yaml)")
	flag.StringVar(&opts.scene, "scene", "", "Scene: menu or map (default: the replay's scene, else menu)")
	flag.StringVar(&opts.mapName, "map", "", "Map layout name under maps/")
	flag.IntVar(&opts.ticks, "ticks", -1, "Ticks to run (default: length of the replay, else 0)")
	flag.StringVar(&opts.hold, "hold", "", "Keys held on every tick, e.g. up,fire")
	flag.StringVar(&opts.replayName, "replay", "", "Play back a stored recording")
	flag.StringVar(&opts.replayFile, "replay-file", "", "Play back a recording from a JSON file")
	flag.StringVar(&opts.out, "out", "snapshot.png", "Output PNG file")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("snapshot: %v", err)
	}
}

func run(opts options) error {
	loader := bootstrap.ConfigLoader(opts.configDir)

	input, recorded, err := openInput(loader, opts)
	if err != nil {
		return err
	}

	sceneName := opts.scene
	if sceneName == "" && recorded != nil {
		sceneName = recorded.Scene
	}
	if sceneName == "" {
		sceneName = state.SceneMenu.String()
	}
	sceneID, err := state.ParseSceneID(sceneName)
	if err != nil {
		return err
	}

	ticks := opts.ticks
	if ticks < 0 {
		ticks = 0
		if recorded != nil {
			ticks = len(recorded.Frames)
		}
	}

	env, err := bootstrap.NewEnv(loader, opts.assetDir, input)
	if err != nil {
		return err
	}
	mapCfg, err := bootstrap.LoadMap(loader, opts.mapName)
	if err != nil {
		return err
	}
	initial, err := bootstrap.NewScene(env, sceneID, mapCfg)
	if err != nil {
		return err
	}

	w, h := env.ScreenSize()
	g := game.New(initial, w, h)
	g.SetDT(env.TickDuration())
	g.SetCloseSignal(func() bool { return false })
	if err := g.Step(ticks); err != nil {
		return fmt.Errorf("failed after %d ticks: %w", ticks, err)
	}

	renderer, ok := g.Current().(scene.Renderer)
	if !ok {
		return fmt.Errorf("scene %s cannot render headless", sceneID)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	renderer.Render(img)

	if err := writePNG(opts.out, img); err != nil {
		return err
	}
	log.Printf("[Snapshot] %s after %d ticks -> %s", sceneID, ticks, opts.out)
	return nil
}

// openInput picks the input source: a stored recording, a recording file,
// or the keys given with -hold.
func openInput(loader *config.Loader, opts options) (system.InputSource, *replay.ReplayData, error) {
	switch {
	case opts.replayName != "":
		cfg, err := loader.LoadGame()
		if err != nil {
			return nil, nil, err
		}
		store, err := replay.OpenStore(cfg.Replay.AppName)
		if err != nil {
			return nil, nil, err
		}
		data, err := store.Load(opts.replayName)
		if err != nil {
			return nil, nil, err
		}
		return replay.NewReplayer(*data), data, nil
	case opts.replayFile != "":
		data, err := replay.LoadReplay(opts.replayFile)
		if err != nil {
			return nil, nil, err
		}
		return replay.NewReplayer(*data), data, nil
	default:
		controls, err := system.ParseControls(opts.hold)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid -hold: %w", err)
		}
		return system.HeldInput{Controls: controls}, nil, nil
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
