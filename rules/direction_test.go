package rules

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionOpposite(t *testing.T) {
	require.Equal(t, DirectionLeft, DirectionRight.Opposite())
	require.Equal(t, DirectionRight, DirectionLeft.Opposite())
	require.Equal(t, DirectionDown, DirectionUp.Opposite())
	require.Equal(t, DirectionUp, DirectionDown.Opposite())
	require.Equal(t, DirectionNone, DirectionNone.Opposite())
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" Up ")
	require.NoError(t, err)
	require.Equal(t, DirectionUp, d)

	_, err = ParseDirection("diagonal")
	require.Error(t, err)
}

func TestDirectionJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		D Direction `json:"d"`
	}{D: DirectionDown})
	require.NoError(t, err)
	require.JSONEq(t, `{"d":"down"}`, string(data))

	var v struct {
		D Direction `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"left"}`), &v))
	require.Equal(t, DirectionLeft, v.D)
}

func TestDirectionValid(t *testing.T) {
	require.False(t, DirectionNone.Valid())
	require.True(t, DirectionRight.Valid())
	require.True(t, DirectionDown.Valid())
	require.False(t, Direction(42).Valid())
}
