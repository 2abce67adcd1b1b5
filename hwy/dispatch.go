package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set detected at startup.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go loops over buffers.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// NoSimdEnvVar is the environment variable that forces scalar dispatch.
const NoSimdEnvVar = "QMATVEC_NO_SIMD"

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Vector reports whether the level has vector registers the lane types map onto.
func (d DispatchLevel) Vector() bool {
	return d != DispatchScalar
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
var currentWidth int

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if QMATVEC_NO_SIMD is set. Any non-empty value that does
// not parse as false counts as set.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // keep 128-bit lanes even in scalar mode
}

// SetLevelForTesting overrides the detected level and returns a function that
// restores the previous one.
func SetLevelForTesting(level DispatchLevel) (restore func()) {
	prevLevel, prevWidth := currentLevel, currentWidth
	currentLevel = level
	switch level {
	case DispatchAVX2:
		currentWidth = 32
	case DispatchAVX512:
		currentWidth = 64
	default:
		currentWidth = 16
	}
	return func() {
		currentLevel, currentWidth = prevLevel, prevWidth
	}
}
