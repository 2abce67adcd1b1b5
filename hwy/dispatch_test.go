package hwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchLevelString(t *testing.T) {
	names := map[DispatchLevel]string{
		DispatchScalar:    "scalar",
		DispatchSSE2:      "sse2",
		DispatchAVX2:      "avx2",
		DispatchAVX512:    "avx512",
		DispatchNEON:      "neon",
		DispatchLevel(99): "unknown",
	}
	for level, want := range names {
		assert.Equal(t, want, level.String())
	}
	assert.False(t, DispatchScalar.Vector())
	assert.True(t, DispatchNEON.Vector())
}

func TestCurrentLevel(t *testing.T) {
	t.Logf("Current level: %s, width: %d bytes", CurrentName(), CurrentWidth())
	assert.Contains(t, []int{16, 32, 64}, CurrentWidth())
	if NoSimdEnv() {
		assert.Equal(t, DispatchScalar, CurrentLevel())
	}
}

func TestSetLevelForTesting(t *testing.T) {
	before := CurrentLevel()
	restore := SetLevelForTesting(DispatchAVX2)
	assert.Equal(t, DispatchAVX2, CurrentLevel())
	assert.Equal(t, 32, CurrentWidth())
	restore()
	assert.Equal(t, before, CurrentLevel())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv(NoSimdEnvVar, tt.val)
		assert.Equal(t, tt.want, NoSimdEnv(), "%s=%q", NoSimdEnvVar, tt.val)
	}
}
