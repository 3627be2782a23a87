package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// diskRoot overrides the embedded prefabs when the game runs from the repo,
// which is what makes hot reload useful.
const diskRoot = "prefabs"

//go:embed *.yaml scripts/*.tengo
var bundled embed.FS

// Load returns a yaml prefab by name.
func Load(name string) ([]byte, error) {
	return read(prefabKey(name))
}

// LoadScript returns a modifier script. name may include the scripts/ or
// prefabs/scripts/ prefix.
func LoadScript(name string) ([]byte, error) {
	return read(scriptKey(name))
}

func read(key string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(diskRoot, filepath.FromSlash(key))); err == nil {
		return data, nil
	}
	return bundled.ReadFile(key)
}

// prefabKey maps a name or repo-relative path to its key under diskRoot.
func prefabKey(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), diskRoot+"/")
}

func scriptKey(name string) string {
	return path.Join("scripts", strings.TrimPrefix(prefabKey(name), "scripts/"))
}
