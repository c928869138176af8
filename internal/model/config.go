package model

import (
	"github.com/OldStager01/diabetes-risk/pkg/config"
)

// PathsFromConfig resolves the configured artifact paths. Without an
// explicit base_dir, relative paths are taken from the executable's
// directory so the working directory at launch does not matter.
func PathsFromConfig(cfg config.ArtifactsConfig) (Paths, error) {
	base := cfg.BaseDir
	if base == "" {
		dir, err := ExecutableDir()
		if err != nil {
			return Paths{}, err
		}
		base = dir
	}

	return Paths{
		Scaler: cfg.ScalerPath,
		Model:  cfg.ModelPath,
	}.Resolve(base), nil
}

// LoadFromConfig resolves and loads both artifacts.
func LoadFromConfig(cfg config.ArtifactsConfig) (*Artifacts, error) {
	paths, err := PathsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return Load(paths)
}
