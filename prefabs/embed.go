package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml scripts/*.tengo
var PrefabsFS embed.FS

// Dir is where on-disk overrides are looked up. A file there wins over the
// embedded copy, which is what hot reload edits.
var Dir = "prefabs"

// Load returns the named prefab, preferring the on-disk copy.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript returns a tengo script from scripts/.
func LoadScript(name string) ([]byte, error) {
	return Load(scriptPath(name))
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}
	return s
}

func scriptPath(name string) string {
	s := cleanPath(name)
	s = strings.TrimPrefix(s, "scripts/")
	return path.Join("scripts", s)
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
