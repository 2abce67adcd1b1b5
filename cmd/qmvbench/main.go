// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command qmvbench times the scalar and the accelerated quantized
// matrix-vector kernels on the same logical matrix.
//
// Usage:
//
//	qmvbench                              # 100x100 ones, v[j] = j
//	qmvbench -rows 1024 -cols 512 -seed 7 -repeat 100
//	qmvbench -rounding per-term -json
//
// For each kernel it prints the first four outputs and the elapsed time.
// It exits with status 1 when the kernels disagree or the flags are invalid.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("qmvbench: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
