package scenes

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var ScenesFS embed.FS

// Dir is where on-disk scene scripts live. A file there shadows the embedded
// copy of the same name.
var Dir = "scenes"

func Load(name string) ([]byte, error) {
	clean := cleanScenePath(name)
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	return ScenesFS.ReadFile(clean)
}

// DiskPath returns where the on-disk copy of a scene script would be.
func DiskPath(name string) string {
	return filepath.Join(Dir, filepath.FromSlash(cleanScenePath(name)))
}

func cleanScenePath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "scenes/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
