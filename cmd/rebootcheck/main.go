// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/fidpa/rebootcheck/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args))
}
