// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vditor-wsl/vditor-bridge/cmd/app"
	"k8s.io/klog/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	command := app.NewCommand(ctx)
	err := command.Execute()
	stop()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
