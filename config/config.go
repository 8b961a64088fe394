package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"

	"tour-engine/tourmg"
)

var cfgFile = "tour-engine/config.json"

// Defaults are the board parameters a driver falls back to when its flags
// are left unset.
type Defaults struct {
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	Piece         string `json:"piece"`
	SymmetryDepth int    `json:"symmetry_depth"`
}

type Server struct {
	Addr string `json:"addr"`
}

type Config struct {
	Defaults Defaults `json:"defaults"`
	Server   Server   `json:"server"`
}

var DefaultConfig = Config{
	Defaults: Defaults{
		Rows:          3,
		Cols:          3,
		Piece:         "rook",
		SymmetryDepth: 3,
	},
	Server: Server{
		Addr: ":8080",
	},
}

// InitConfig returns DefaultConfig overlaid with the user's config file, if
// one exists under the XDG config directories.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", absPath, err)
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Defaults.Rows <= 0 || c.Defaults.Cols <= 0 {
		return fmt.Errorf("config: board size %dx%d is not positive", c.Defaults.Rows, c.Defaults.Cols)
	}
	if c.Defaults.SymmetryDepth < 0 {
		return fmt.Errorf("config: symmetry depth %d is negative", c.Defaults.SymmetryDepth)
	}
	if _, err := tourmg.ParsePieceKind(c.Defaults.Piece); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Save writes the config to the XDG config directory, creating it if needed.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("config: resolving path: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	return os.WriteFile(absPath, data, 0o664)
}

func readCfgFile(filePath string, c *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, c)
}
