package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"soroia/config"
	"soroia/pkg/log"
)

// Options is the root command. The struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Chat  ChatCmd  `command:"chat"  description:"Chat with the assistant in the terminal"`
	Index IndexCmd `command:"index" description:"Split the text corpus and upload it to Qdrant"`
}

// bootstrap loads the configuration and a logger for a command run.
func bootstrap() (context.Context, context.CancelFunc, *config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx, stop, cfg, logger, nil
}
