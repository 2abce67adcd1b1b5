//go:build !amd64 && !arm64

package hwy

func init() {
	// wasm and riscv64 vector extensions are not detected yet.
	setScalarMode()
}
