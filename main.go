// portfolio-terminal - An interactive terminal portfolio, on the command line
// and over HTTP.
//
// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
