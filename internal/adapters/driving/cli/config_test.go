package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
	assert.Contains(t, configCmd.Long, "links.radius")
}

func TestConfigShowCmd_Defaults(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, nil, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "links.radius    = 0.006251")
	assert.Contains(t, stdout, "links.palette   = (built-in)")
	assert.Contains(t, stdout, "track.colormap  = viridis")
}

func TestConfigSetCmd(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, nil, "config", "set", "track.colormap", "magma")
	require.NoError(t, err)
	_, _, err = execute(t, nil, "config", "set", "links.radius", "0.02")
	require.NoError(t, err)

	stdout, _, err := execute(t, nil, "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "track.colormap  = magma")
	assert.Contains(t, stdout, "links.radius    = 0.02")
}

func TestConfigSetCmd_Invalid(t *testing.T) {
	setupTestServices(t)

	tests := map[string][]string{
		"bad radius":   {"config", "set", "links.radius", "wide"},
		"bad colormap": {"config", "set", "track.colormap", "jet"},
		"unknown key":  {"config", "set", "output.dir", "x"},
		"missing arg":  {"config", "set", "links.radius"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, nil, args...)
			assert.Error(t, err)
		})
	}
}

func TestConfigUnsetCmd(t *testing.T) {
	setupTestServices(t)
	_, _, err := execute(t, nil, "config", "set", "links.radius", "0.5")
	require.NoError(t, err)

	_, _, err = execute(t, nil, "config", "unset", "links.radius")
	require.NoError(t, err)

	stdout, _, err := execute(t, nil, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "links.radius    = 0.006251")
}

func TestConfigPathCmd(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, nil, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", stdout)
}
