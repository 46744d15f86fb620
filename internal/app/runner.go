package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/wxtcc/petcare-client/internal/config"
	"github.com/wxtcc/petcare-client/internal/logger"
	"github.com/wxtcc/petcare-client/pkg/httpclient"
	"github.com/wxtcc/petcare-client/pkg/petapi"
)

// Runner dispatches CLI subcommands to the petapi client and prints their payloads.
type Runner struct {
	cfg    *config.Config
	client *petapi.Client
	out    io.Writer
	log    logger.Logger
	cmds   map[string]command
	order  []string
}

// NewRunner builds a runner from config. transport may be nil to use the default resty client.
func NewRunner(cfg *config.Config, log logger.Logger, out io.Writer, transport httpclient.Client) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if out == nil {
		out = io.Discard
	}

	client := petapi.New(petapi.Options{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		HTTPClient: transport,
		Logger:     log,
	})

	r := &Runner{
		cfg:    cfg,
		client: client,
		out:    out,
		log:    log,
		cmds:   make(map[string]command),
	}
	for _, cmd := range commands() {
		r.cmds[cmd.name] = cmd
		r.order = append(r.order, cmd.name)
	}
	return r, nil
}

// Run executes the subcommand named by args[0] with the remaining args as its flags.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("runner is not initialized")
	}
	if len(args) == 0 || args[0] == "help" {
		r.Usage(r.out)
		if len(args) == 0 {
			return fmt.Errorf("no command given")
		}
		return nil
	}

	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", args[0])
	}

	start := time.Now()
	payload, err := cmd.run(ctx, r.client, args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	r.log.InfoObj("command completed", "command_meta", map[string]any{
		"command":    cmd.name,
		"base_url":   r.client.BaseURL(),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return writeOutput(r.out, r.cfg.Output, payload)
}

// Usage prints the command list.
func (r *Runner) Usage(w io.Writer) {
	fmt.Fprintln(w, "usage: petcare [global flags] <command> [flags]")
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range r.order {
		fmt.Fprintf(tw, "  %s\t%s\n", name, r.cmds[name].summary)
	}
	_ = tw.Flush()
}
