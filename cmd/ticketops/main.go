// Command ticketops runs one-off operator tasks against the ticketing
// database: an expiry sweep, a batch refund, or bootstrapping an admin.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/app"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/config"
	"github.com/spf13/pflag"
)

type options struct {
	sweep        bool
	refundOrders []string
	actor        string
	reason       string
	createAdmin  string
	username     string
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ticketops: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, flagSet, err := parseOptions(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(config.MustLoad())
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}
	defer a.Close()

	switch {
	case opts.sweep:
		n, err := a.Sweep(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("expired %d transfer request(s)\n", n)

	case len(opts.refundOrders) > 0:
		res, err := a.BatchRefund(ctx, opts.actor, opts.refundOrders, opts.reason)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err = enc.Encode(res); err != nil {
			return err
		}
		if len(res.Failed) > 0 {
			return fmt.Errorf("%d of %d refunds failed", len(res.Failed), res.Requested)
		}

	default:
		u, err := a.CreateAdmin(ctx, opts.createAdmin, opts.username)
		if err != nil {
			return err
		}
		fmt.Printf("created admin %s (%s)\n", u.ID, u.Email)
	}

	return nil
}

// parseOptions checks that exactly one task was requested along with the
// flags that task needs.
func parseOptions(args []string) (options, *pflag.FlagSet, error) {
	var opts options

	flagSet := pflag.NewFlagSet("ticketops", pflag.ContinueOnError)
	flagSet.BoolVar(&opts.sweep, "sweep", false, "expire overdue transfer requests once and exit")
	flagSet.StringSliceVar(&opts.refundOrders, "refund-orders", nil, "comma-separated order ids to refund")
	flagSet.StringVar(&opts.actor, "actor", "", "admin user id the refunds are issued by")
	flagSet.StringVar(&opts.reason, "reason", "", "refund reason recorded with each refund")
	flagSet.StringVar(&opts.createAdmin, "create-admin", "", "email of an admin account to create")
	flagSet.StringVar(&opts.username, "username", "", "username for --create-admin (default: email local part)")

	if err := flagSet.Parse(args); err != nil {
		return opts, flagSet, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return opts, flagSet, fmt.Errorf("unexpected argument: %s", rest[0])
	}

	tasks := 0
	for _, set := range []bool{opts.sweep, len(opts.refundOrders) > 0, opts.createAdmin != ""} {
		if set {
			tasks++
		}
	}
	if tasks != 1 {
		return opts, flagSet, errors.New("exactly one of --sweep, --refund-orders, --create-admin is required")
	}

	for i := range opts.refundOrders {
		opts.refundOrders[i] = strings.TrimSpace(opts.refundOrders[i])
	}
	if len(opts.refundOrders) > 0 && opts.actor == "" {
		return opts, flagSet, errors.New("--refund-orders needs --actor")
	}

	if opts.createAdmin != "" && opts.username == "" {
		opts.username, _, _ = strings.Cut(opts.createAdmin, "@")
	}

	return opts, flagSet, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `ticketops runs one operator task and exits. Configuration is read
from the same environment as the ticketing service.

Usage:
  ticketops --sweep
  ticketops --refund-orders id1,id2 --actor <admin user id> [--reason text]
  ticketops --create-admin ops@example.com [--username ops]

Flags:
%s`, flagSet.FlagUsages())
}
