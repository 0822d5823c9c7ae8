package gamepad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soar/padscope/internal/gamepad"
)

func TestConvertAxisToRumble(t *testing.T) {
	cases := []struct {
		in   int16
		want uint16
	}{
		{math.MinInt16, 0},
		{0, 0},
		{10000, 0},
		{16383, 0},
		{16384, 0},
		{16385, 4},
		{20000, 14464},
		{math.MaxInt16, (math.MaxInt16 - 16384) * 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, gamepad.ConvertAxisToRumble(c.in), "input %d", c.in)
	}
}

func TestConvertAxisToRumbleMonotonic(t *testing.T) {
	prev := gamepad.ConvertAxisToRumble(16384)
	for v := 16385; v <= math.MaxInt16; v++ {
		cur := gamepad.ConvertAxisToRumble(int16(v))
		require.GreaterOrEqual(t, cur, prev, "input %d", v)
		prev = cur
	}
}

func TestStickTriggerRumbleUsesComplement(t *testing.T) {
	r := gamepad.StickTriggerRumble(math.MinInt16, 0)
	require.Equal(t, gamepad.ConvertAxisToRumble(math.MaxInt16), r.Low)
	require.Zero(t, r.High)

	r = gamepad.StickTriggerRumble(math.MaxInt16, -20001)
	require.Zero(t, r.Low)
	require.Equal(t, uint16(14464), r.High)
}

func TestLEDColor(t *testing.T) {
	assert.Equal(t, gamepad.Color{}, gamepad.LEDColor(0, 0))
	assert.Equal(t, gamepad.Color{R: 255}, gamepad.LEDColor(math.MinInt16, 0))
	assert.Equal(t, gamepad.Color{B: 255}, gamepad.LEDColor(math.MaxInt16, math.MinInt16))
	assert.Equal(t, gamepad.Color{B: 127, G: 255}, gamepad.LEDColor(16384, math.MaxInt16))
	assert.Equal(t, gamepad.Color{R: 63}, gamepad.LEDColor(-8193, -100))
}

func TestLEDGateArmsOnce(t *testing.T) {
	var g gamepad.LEDGate
	require.False(t, g.Update(0, 0))
	require.False(t, g.Update(8000, -8000))
	require.False(t, g.Update(0, -30000), "negative Y must not arm")
	require.False(t, g.Armed())

	require.True(t, g.Update(-8001, 0))
	require.True(t, g.Update(0, 0), "returning to the deadzone must not disarm")
	require.True(t, g.Armed())
}

func TestLEDGateArmsOnPositiveY(t *testing.T) {
	var g gamepad.LEDGate
	require.True(t, g.Update(0, 8001))
}
