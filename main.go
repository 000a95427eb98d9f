// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"dstatplot/cmd"
)

func main() {
	cmd.Execute()
}
