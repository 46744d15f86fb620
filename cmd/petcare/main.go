package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/wxtcc/petcare-client/internal/app"
	"github.com/wxtcc/petcare-client/internal/config"
	"github.com/wxtcc/petcare-client/internal/logger"
	"github.com/wxtcc/petcare-client/pkg/httpclient"
	"github.com/wxtcc/petcare-client/pkg/petapi"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		var apiErr *petapi.Error
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "petcare: request failed: code=%d message=%q at %s\n", apiErr.Code, apiErr.Message, apiErr.Timestamp)
		} else {
			fmt.Fprintf(os.Stderr, "petcare: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("petcare", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg, err := config.LoadWithFlags(fs)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("petcare starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	transport := httpclient.NewRestyClient(cfg.Timeout).SetLogger(log)
	runner, err := app.NewRunner(cfg, log, os.Stdout, transport)
	if err != nil {
		logger.ErrorObj("failed to initialize runner", "error", err.Error())
		return fmt.Errorf("init runner: %w", err)
	}

	if err := runner.Run(ctx, fs.Args()); err != nil {
		logger.ErrorObj("command failed", "command_meta", map[string]any{
			"command": fs.Arg(0),
			"error":   err.Error(),
		})
		return err
	}
	return nil
}
