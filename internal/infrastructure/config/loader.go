package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Movement *MovementConfig
	World    *WorldConfig
}

// Loader loads configuration files using the fs.FS interface.
// Each config may be JSON or YAML; the first existing extension wins.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// configExts is the lookup order for a config base name
var configExts = []string{".json", ".yaml", ".yml"}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadMovement loads movement.{json,yaml,yml}, clamped into range
func (l *Loader) LoadMovement() (*MovementConfig, error) {
	cfg := DefaultMovementConfig()
	if err := l.load("movement", &cfg); err != nil {
		return nil, err
	}
	cfg = cfg.Clamp()
	return &cfg, nil
}

// LoadWorld loads world.{json,yaml,yml}
func (l *Loader) LoadWorld() (*WorldConfig, error) {
	var cfg WorldConfig
	if err := l.load("world", &cfg); err != nil {
		return nil, err
	}
	if cfg.Display.Framerate <= 0 {
		cfg.Display.Framerate = 50
	}
	return &cfg, nil
}

// LoadAll loads all configurations (movement, world)
func (l *Loader) LoadAll() (*GameConfig, error) {
	movement, err := l.LoadMovement()
	if err != nil {
		return nil, err
	}

	world, err := l.LoadWorld()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Movement: movement,
		World:    world,
	}, nil
}

func (l *Loader) load(base string, out any) error {
	for _, ext := range configExts {
		name := base + ext
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := decode(name, data, out); err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("failed to read %s: %w", base+configExts[0], fs.ErrNotExist)
}

func decode(name string, data []byte, out any) error {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		return json.Unmarshal(data, out)
	}
}

// IsConfigFile reports whether name is a file the loader would read for base
func IsConfigFile(name, base string) bool {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	for _, ext := range configExts {
		if strings.EqualFold(name, base+ext) {
			return true
		}
	}
	return false
}
