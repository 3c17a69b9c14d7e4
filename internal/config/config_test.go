package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "framegen.yaml")
	const body = `
data_dir: /srv/game/KT_Skill
output: /tmp/frames.json
database:
  host: db.internal
  port: 5433
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/game/KT_Skill", cfg.DataDir)
	assert.Equal(t, "/tmp/frames.json", cfg.Output)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	// Untouched fields keep their defaults.
	assert.Equal(t, "SkillData.xml", cfg.SkillData)
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestPathResolution(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.DataDir = "/data/kt"
	assert.Equal(t, "/data/kt/SkillData.xml", cfg.SkillDataPath())
	assert.Equal(t, "/data/kt/SkillPropertiesLua.xml", cfg.SkillPropertiesPath())
	assert.Equal(t, "/data/kt/BulletConfig.xml", cfg.BulletConfigPath())

	cfg.SkillData = "/abs/SkillData.xml"
	assert.Equal(t, "/abs/SkillData.xml", cfg.SkillDataPath())
}

func TestDSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: "db", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@localhost:5432/db?sslmode=disable", d.DSN())
}
