// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/minerdetect/minerscan/internal/cli"
	"github.com/minerdetect/minerscan/internal/core"
	"github.com/minerdetect/minerscan/internal/logger"
	"github.com/minerdetect/minerscan/pkg/network"
)

func main() {
	log := logger.New()

	userNet, err := network.NewDefaultNetwork()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to find default network")
	}

	runner := core.New()

	cmd, err := cli.Root(runner, userNet)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cli")
	}

	// interrupt cancels in-flight pipelines; partial results are reported
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("command encountered an error")
	}
}
