/*
 * config.go, part of polygen.
 *
 * Copyright 2026 The polygen authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package config reads the settings of the polygen command from an optional
//YAML file, with POLYGEN_* environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	chem "github.com/polygen/polygen"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	BondFactor float64      `mapstructure:"bond_factor" yaml:"bond_factor"`
	Render     RenderConfig `mapstructure:"render" yaml:"render"`
	MonomerDir string       `mapstructure:"monomer_dir" yaml:"monomer_dir"`
	Output     OutputConfig `mapstructure:"output" yaml:"output"`
}

//RenderConfig holds the view settings. A Distance of +Inf (written "inf"
//or ".inf") draws the whole molecule.
type RenderConfig struct {
	Distance float64 `mapstructure:"distance" yaml:"distance"`
	Phi      float64 `mapstructure:"phi" yaml:"phi"`
	Theta    float64 `mapstructure:"theta" yaml:"theta"`
}

//OutputConfig holds the files written by the command. Empty names are not written.
type OutputConfig struct {
	PNG     string  `mapstructure:"png" yaml:"png"`
	JSON    string  `mapstructure:"json" yaml:"json"`
	WidthCm float64 `mapstructure:"width_cm" yaml:"width_cm"`
}

var ErrInvalid = errors.New("invalid configuration")

func setDefaults(v *viper.Viper) {
	v.SetDefault("bond_factor", chem.DefaultBondFactor)
	v.SetDefault("render.distance", 10.0)
	v.SetDefault("render.phi", 0.0)
	v.SetDefault("render.theta", 90.0)
	v.SetDefault("monomer_dir", "XYZ")
	v.SetDefault("output.png", "")
	v.SetDefault("output.json", "")
	v.SetDefault("output.width_cm", 12.0)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("POLYGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

//Default returns the default configuration. The environment is not read.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := unmarshal(v)
	if err != nil {
		panic("polygen/config: the defaults can't be decoded: " + err.Error()) //the defaults are hardcoded
	}
	return cfg
}

//Load reads the configuration file path. An empty path uses only the
//defaults and the environment. The configuration returned is valid.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("polygen/config: can't read %s: %w", path, err)
		}
	}
	cfg, err := unmarshal(v)
	if err != nil {
		return nil, fmt.Errorf("polygen/config: can't decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

//Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("polygen/config: can't encode configuration: %w", err)
	}
	return os.WriteFile(path, out, 0644)
}

//Apply sets the bond factor, render cutoff and view angles of viewer
//to those of the configuration. viewer is left unchanged on error.
func (C *Config) Apply(viewer *chem.Viewer) error {
	if err := C.Validate(); err != nil {
		return err
	}
	if err := viewer.SetBondFactor(C.BondFactor); err != nil {
		return err
	}
	if err := viewer.SetCutoff(C.Render.Distance); err != nil {
		return err
	}
	return viewer.SetAngles(C.Render.Phi, C.Render.Theta)
}

//Validate returns an error if any setting is out of range. The settings
//go through a scratch chem.Viewer, which enforces the same limits.
func (C *Config) Validate() error {
	v := chem.NewViewer()
	if err := v.SetBondFactor(C.BondFactor); err != nil {
		return fmt.Errorf("polygen/config: %w: bond_factor: %w", ErrInvalid, err)
	}
	if err := v.SetCutoff(C.Render.Distance); err != nil {
		return fmt.Errorf("polygen/config: %w: render.distance: %w", ErrInvalid, err)
	}
	if err := v.SetAngles(C.Render.Phi, C.Render.Theta); err != nil {
		return fmt.Errorf("polygen/config: %w: render angles: %w", ErrInvalid, err)
	}
	if math.IsNaN(C.Output.WidthCm) || C.Output.WidthCm <= 0 {
		return fmt.Errorf("polygen/config: %w: output.width_cm must be positive, got %v", ErrInvalid, C.Output.WidthCm)
	}
	return nil
}
