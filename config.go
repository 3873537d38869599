// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avlprune.yaml"

type GeneratorConfig struct {
	Min   int   `yaml:"min"`
	Max   int   `yaml:"max"` // exclusive
	Count int   `yaml:"count"`
	Seed  int64 `yaml:"seed"` // 0 seeds from the clock
}

type DisplayConfig struct {
	Wrap     int    `yaml:"wrap"`
	CacheTTL string `yaml:"cache_ttl"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Display   DisplayConfig   `yaml:"display"`
	Logging   LoggingConfig   `yaml:"logging"`
}

var defaultConfig = Config{
	Generator: GeneratorConfig{
		Min:   0,
		Max:   100,
		Count: 10,
	},
	Display: DisplayConfig{
		Wrap:     72,
		CacheTTL: "30m",
	},
	Logging: LoggingConfig{
		Level: "warn",
	},
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

// CacheTTLDuration returns the render cache expiration.
func (c *Config) CacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.Display.CacheTTL)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(defaultConfig.Display.CacheTTL)
	}
	return d
}

func (c *Config) validate() error {
	g := c.Generator
	if g.Max <= g.Min || g.Max-g.Min <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "generator range [%d, %d) is empty", g.Min, g.Max)
	}
	if g.Count <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "generator count %d must be positive", g.Count)
	}
	if c.Display.Wrap <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "display wrap %d must be positive", c.Display.Wrap)
	}
	if _, err := time.ParseDuration(c.Display.CacheTTL); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "display cache_ttl %q: %v", c.Display.CacheTTL, err)
	}
	return nil
}

// LoadConfig reads ~/.avlprune.yaml. A missing file yields the defaults; an
// unreadable or invalid one yields the defaults together with the error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom is LoadConfig for an explicit path. Fields missing from the
// file keep their default values.
func LoadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults(), nil
		}
		return defaults(), errors.Wrapf(err, "failed to read %s", configPath)
	}

	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), errors.Wrapf(err, "failed to parse %s", configPath)
	}
	if err := config.validate(); err != nil {
		return defaults(), err
	}

	return config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return errors.Wrap(err, "failed to get config path")
	}
	return writeConfigFile(configPath, &defaultConfig)
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 avlprune Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🎲 %sGenerator:%s\n", Green, Reset)
	fmt.Printf("  • %smin%s: %d\n", Green, Reset, config.Generator.Min)
	fmt.Printf("  • %smax%s: %d (exclusive)\n", Green, Reset, config.Generator.Max)
	fmt.Printf("  • %scount%s: %d\n", Green, Reset, config.Generator.Count)
	if config.Generator.Seed == 0 {
		fmt.Printf("  • %sseed%s: 0 (seeded from the clock)\n\n", Green, Reset)
	} else {
		fmt.Printf("  • %sseed%s: %d\n\n", Green, Reset, config.Generator.Seed)
	}

	fmt.Printf("🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %swrap%s: %d\n", Green, Reset, config.Display.Wrap)
	fmt.Printf("  • %scache_ttl%s: %s\n\n", Green, Reset, config.CacheTTLDuration())

	fmt.Printf("📜 %sLogging:%s\n", Green, Reset)
	fmt.Printf("  • %slevel%s: %s\n", Green, Reset, config.Logging.Level)
	if config.Logging.File == "" {
		fmt.Printf("  • %sfile%s: (disabled)\n\n", Green, Reset)
	} else {
		fmt.Printf("  • %sfile%s: %s\n\n", Green, Reset, config.Logging.File)
	}

	fmt.Printf("💡 To trace pruning passes, edit %s:\n", configPath)
	fmt.Printf("   logging:\n     level: debug\n     file: /tmp/avlprune.log\n")
}
