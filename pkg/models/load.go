package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads a model by file extension. An empty path returns the
// reference cube.
func Load(path string) (*Model, error) {
	if path == "" {
		return Cube(), nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		return LoadGLB(path)
	case ".obj":
		return LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj, .glb or .gltf)", ext)
	}
}
