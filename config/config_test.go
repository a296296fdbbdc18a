package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	const key = "ARENA_TEST_INT"
	defer os.Unsetenv(key)

	require.Equal(t, 7, getEnvInt(key, 7))

	os.Setenv(key, "42")
	require.Equal(t, 42, getEnvInt(key, 7))

	os.Setenv(key, "not-a-number")
	require.Equal(t, 7, getEnvInt(key, 7))
}

func TestGetEnvFloat(t *testing.T) {
	const key = "ARENA_TEST_FLOAT"
	defer os.Unsetenv(key)

	require.Equal(t, 2.5, getEnvFloat(key, 2.5))

	os.Setenv(key, "12.25")
	require.Equal(t, 12.25, getEnvFloat(key, 2.5))

	os.Setenv(key, "fast")
	require.Equal(t, 2.5, getEnvFloat(key, 2.5))
}

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, DefaultWidth, c.Width)
	require.Equal(t, DefaultHeight, c.Height)
	require.Equal(t, DefaultBlockSize, c.BlockSize)
	require.Equal(t, DefaultSnakes, c.Snakes)
	require.False(t, c.ForbidReversal)
}

func TestColumnsRows(t *testing.T) {
	c := Config{Width: 640, Height: 480, BlockSize: 20}
	require.Equal(t, 32, c.Columns())
	require.Equal(t, 24, c.Rows())

	c.BlockSize = 0
	require.Equal(t, 0, c.Columns())
	require.Equal(t, 0, c.Rows())
}
