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

// Command reducetest verifies the reduction engine against the closed-form
// oracle for every supported element type.
//
// Usage:
//
//	reducetest run                                   # built-in test matrix
//	reducetest run --plan plan.yaml --scheduler permuted --seed 7
//	reducetest run --types int,half4 --tree -v
//	reducetest intervals --size 20000
//	reducetest types
//	reducetest info
//
// The exit status is 0 when every check passes and 1 otherwise.
// HWY_REDUCE_SCHEDULER and HWY_REDUCE_WORKERS override the plan; flags
// override both.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
