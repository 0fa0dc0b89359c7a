// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"code.hybscloud.com/coop/internal/cli"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		cli.NewRootCommand(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
