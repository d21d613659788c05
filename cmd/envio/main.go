// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command envio runs the staged-computation demonstration scenarios.
package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/envio/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "envio:", err)
		os.Exit(1)
	}
}
