package prefabs

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/mechplatformer/system"
)

// ReloadKind names the part of the world a changed file feeds.
type ReloadKind int

const (
	ReloadNone ReloadKind = iota
	ReloadPlayer
	ReloadCombat
	ReloadGame
	ReloadEnemy
	ReloadArena
)

var reloadKindNames = [...]string{"none", "player", "combat", "game", "enemy", "arena"}

func (k ReloadKind) String() string {
	if k < 0 || int(k) >= len(reloadKindNames) {
		return fmt.Sprintf("ReloadKind(%d)", int(k))
	}
	return reloadKindNames[k]
}

// Change is one debounced file change.
type Change struct {
	Kind ReloadKind
	Path string
}

// KindOf classifies a path by file name. Modifier scripts count as combat
// changes since the calculator is the only thing that runs them.
func KindOf(path string) ReloadKind {
	name := strings.ToLower(filepath.Base(path))
	if filepath.Ext(name) == ".tengo" {
		return ReloadCombat
	}
	switch strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml") {
	case "player":
		return ReloadPlayer
	case "combat":
		return ReloadCombat
	case "game":
		return ReloadGame
	case "enemy":
		return ReloadEnemy
	case "arena":
		return ReloadArena
	}
	return ReloadNone
}

// Reload re-reads the prefab behind a change and pushes the new values into
// the running world. Arena and enemy changes are reported and left for the
// next launch.
func Reload(c Change, w *system.World) error {
	switch c.Kind {
	case ReloadPlayer:
		spec, err := loadValid[PlayerSpec]("player.yaml")
		if err != nil {
			return err
		}
		cfg, err := spec.Config()
		if err != nil {
			return fmt.Errorf("prefabs: player.yaml: %w", err)
		}
		w.ApplyPlayerConfig(cfg)
		w.ApplyProjectileConfig(spec.ProjectileConfig())
	case ReloadCombat:
		spec, err := loadValid[CombatSpec]("combat.yaml")
		if err != nil {
			return err
		}
		calc, err := spec.Calculator()
		if err != nil {
			return err
		}
		w.ApplyDamageMultiplier(calc.Multiplier)
	case ReloadGame:
		spec, err := loadValid[GameSpec]("game.yaml")
		if err != nil {
			return err
		}
		w.ApplyGameConfig(spec.Config())
	case ReloadEnemy, ReloadArena:
		log.Printf("prefabs: %s changed, applies on next launch", filepath.Base(c.Path))
	default:
		return fmt.Errorf("prefabs: no reload for %s", c.Path)
	}
	return nil
}
