package cnb

import (
	"DotenvBuildpack/internal/layerenv"
	"DotenvBuildpack/internal/paths"
	"fmt"
	"os"

	"github.com/buildpacks/libcnb/v2"
	toml "github.com/pelletier/go-toml/v2"
)

// LayerTypes are the lifecycle flags of a layer.
type LayerTypes = libcnb.LayerTypes

type layerMetadataFile struct {
	Types    LayerTypes     `toml:"types"`
	Metadata map[string]any `toml:"metadata,omitempty"`
}

// HandleLayer contributes a layer named name holding patch. The environment is
// staged in a temporary directory and moved into place, then <layers>/<name>.toml
// is written, so a failure leaves no layer behind. It returns the layer directory.
func (bc BuildContext) HandleLayer(name string, types LayerTypes, metadata map[string]any, patch *layerenv.Patch) (string, error) {
	layerDir := paths.GetLayerDir(bc.LayersDir, name)
	tomlPath := paths.GetLayerMetadataPath(bc.LayersDir, name)

	data, err := toml.Marshal(layerMetadataFile{Types: types, Metadata: metadata})
	if err != nil {
		return "", fmt.Errorf("failed to encode layer metadata for %s: %w", name, err)
	}

	if err := os.MkdirAll(bc.LayersDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create layers directory %s: %w", bc.LayersDir, err)
	}
	staging, err := os.MkdirTemp(bc.LayersDir, "."+name+"-*")
	if err != nil {
		return "", fmt.Errorf("failed to stage layer %s: %w", name, err)
	}
	defer os.RemoveAll(staging)

	if err := os.Chmod(staging, 0755); err != nil {
		return "", err
	}
	if err := patch.Write(staging); err != nil {
		return "", fmt.Errorf("failed to write environment for layer %s: %w", name, err)
	}

	// Layers are not restored from cache, so any existing content is stale.
	if err := os.RemoveAll(layerDir); err != nil {
		return "", fmt.Errorf("failed to clear layer %s: %w", layerDir, err)
	}
	if err := os.Rename(staging, layerDir); err != nil {
		return "", fmt.Errorf("failed to move layer %s into place: %w", name, err)
	}
	if err := os.WriteFile(tomlPath, data, 0644); err != nil {
		os.RemoveAll(layerDir)
		return "", fmt.Errorf("failed to write layer metadata %s: %w", tomlPath, err)
	}
	return layerDir, nil
}

// ReadLayerTypes decodes the [types] table of <layers>/<name>.toml.
func ReadLayerTypes(layersDir, name string) (LayerTypes, map[string]any, error) {
	var f layerMetadataFile
	data, err := os.ReadFile(paths.GetLayerMetadataPath(layersDir, name))
	if err != nil {
		return f.Types, nil, err
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return f.Types, nil, err
	}
	return f.Types, f.Metadata, nil
}
