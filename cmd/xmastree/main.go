// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xmastree generates procedural low-poly Christmas trees,
// and exports, previews and animates them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"cogentcore.org/xmastree/cmd/xmastree/cmd"
	"cogentcore.org/xmastree/logx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, logx.ErrorColor("xmastree: "+err.Error()))
		os.Exit(1)
	}
}
