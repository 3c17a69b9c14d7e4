package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the frame-data generator.
type Config struct {
	// Source tables. Relative table paths are joined to DataDir.
	DataDir         string `yaml:"data_dir"`
	SkillData       string `yaml:"skill_data"`
	SkillProperties string `yaml:"skill_properties"`
	BulletConfig    string `yaml:"bullet_config"`

	// Output document.
	Output string `yaml:"output"`

	// Database, used only with -publish.
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns the configuration for a checkout laid out like the game
// server repository.
func Default() Config {
	return Config{
		DataDir:         "server/bin/GameServer/Config/Config/KT_Skill",
		SkillData:       "SkillData.xml",
		SkillProperties: "SkillPropertiesLua.xml",
		BulletConfig:    "BulletConfig.xml",
		Output:          "docs/skill_frame_data.json",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "skillframe",
			Password: "skillframe",
			DBName:   "gameserver",
			SSLMode:  "disable",
		},
	}
}

// Load loads configuration from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SkillDataPath returns the resolved path to SkillData.xml.
func (c Config) SkillDataPath() string { return c.resolve(c.SkillData) }

// SkillPropertiesPath returns the resolved path to SkillPropertiesLua.xml.
func (c Config) SkillPropertiesPath() string { return c.resolve(c.SkillProperties) }

// BulletConfigPath returns the resolved path to BulletConfig.xml.
func (c Config) BulletConfigPath() string { return c.resolve(c.BulletConfig) }

func (c Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.DataDir, path)
}
