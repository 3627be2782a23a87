package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/physics"
	"github.com/milk9111/mechplatformer/prefabs"
	"github.com/milk9111/mechplatformer/system"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "hot reload prefabs/ on change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	bundle, err := prefabs.LoadBundle()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := bundle.WorldConfig()
	if err != nil {
		log.Fatal(err)
	}

	space := physics.NewSpace()
	terrain := make([]common.Rect, 0, len(bundle.Arena.Terrain))
	for _, t := range bundle.Arena.Terrain {
		r := t.Rect()
		space.AddTerrain(r)
		terrain = append(terrain, r)
	}
	cfg.Ground = space
	cfg.Contacts = space
	cfg.Colliders = space

	world := system.NewWorld(cfg)
	for _, pos := range bundle.Arena.Enemies {
		world.SpawnEnemy(pos.Vec2())
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
			watcher = nil
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("mechplatformer")

	game := NewGame(world, space, terrain, watcher, *debug)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
