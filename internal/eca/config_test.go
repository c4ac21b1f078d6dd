package eca

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapKeepsDefaultsOnBadInput(t *testing.T) {
	c := FromMap(map[string]string{"size": "-4", "rule": "300", "steps": "x", "seed": "77"})
	def := DefaultConfig()
	assert.Equal(t, def.Size, c.Size)
	assert.Equal(t, def.Rule, c.Rule)
	assert.Equal(t, def.Steps, c.Steps)
	assert.Equal(t, int64(77), c.Seed)
	assert.Equal(t, def, FromMap(nil))
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	bad := []Config{
		{Size: 0, Rule: 1},
		{Size: 5, Rule: 256},
		{Size: 5, Rule: 1, Steps: -1},
	}
	for _, c := range bad {
		assert.True(t, errors.Is(c.Validate(), ErrInvalidParameter), "%+v", c)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rule: 30\nsteps: 12\n"), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, c.Rule)
	assert.Equal(t, 12, c.Steps)
	assert.Equal(t, DefaultConfig().Size, c.Size)

	require.NoError(t, os.WriteFile(path, []byte("rule: 999\n"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	rep, err := Run(Config{Size: 64, Rule: 30, Steps: 10, Seed: 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 11, rep.Engine.Len())

	e, err := New(64, 30)
	require.NoError(t, err)
	require.NoError(t, e.SetInitialState(3))
	require.NoError(t, e.UpdateAll(10))
	m, err := e.Metrics()
	require.NoError(t, err)
	assert.Equal(t, m, rep.Metrics)

	_, err = Run(Config{Size: 0, Rule: 30}, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
