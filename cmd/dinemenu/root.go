package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/dinemenu/internal/db/driver"
	"github.com/kailas-cloud/dinemenu/internal/version"
	dinemenu "github.com/kailas-cloud/dinemenu/pkg/sdk"
)

const envSourceURL = "DINEMENU_SOURCE_URL"

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	sourceURL  string
	timeout    time.Duration
	valkeyAddr string
	redisAddr  string
	password   string
	standalone bool
	cacheTTL   time.Duration
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "dinemenu",
		Short: "Browse a restaurant menu from the terminal",
		Long: `dinemenu reads menu items from a JSON item source and lets you search,
filter by category and inspect every rate tier of an item.

Set the item source with --source-url or the DINEMENU_SOURCE_URL environment
variable. With --valkey or --redis the fetched menu is cached between runs.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("dinemenu {{.Version}}\n")

	f := cmd.PersistentFlags()
	f.StringVar(&opts.sourceURL, "source-url", os.Getenv(envSourceURL), "item source endpoint (env "+envSourceURL+")")
	f.DurationVar(&opts.timeout, "timeout", 15*time.Second, "item source request timeout")
	f.StringVar(&opts.valkeyAddr, "valkey", "", "Valkey address for the menu snapshot cache (host:port)")
	f.StringVar(&opts.redisAddr, "redis", "", "Redis address for the menu snapshot cache (host:port)")
	f.StringVar(&opts.password, "cache-password", "", "cache password")
	f.BoolVar(&opts.standalone, "standalone", false, "Valkey is a standalone instance, not a cluster")
	f.DurationVar(&opts.cacheTTL, "cache-ttl", 5*time.Minute, "menu snapshot lifetime")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file (disabled when empty)")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	cmd.MarkFlagsMutuallyExclusive("valkey", "redis")

	cmd.AddCommand(
		newBrowseCmd(opts),
		newItemsCmd(opts),
		newCategoriesCmd(opts),
		newSummaryCmd(opts),
	)
	return cmd
}

// client builds an SDK client from the shared flags.
func (o *rootOptions) client(ctx context.Context) (*dinemenu.Client, error) {
	clientOpts := []dinemenu.Option{
		dinemenu.WithSourceURL(o.sourceURL),
		dinemenu.WithHTTPTimeout(o.timeout),
		dinemenu.WithCacheTTL(o.cacheTTL),
	}
	switch {
	case o.valkeyAddr != "":
		clientOpts = append(clientOpts, dinemenu.WithValkey(o.valkeyAddr, o.password))
		if o.standalone {
			clientOpts = append(clientOpts, dinemenu.WithStandalone())
		}
	case o.redisAddr != "":
		clientOpts = append(clientOpts, dinemenu.WithRedis(o.redisAddr, o.password))
	}

	c, err := dinemenu.New(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return c, nil
}

// store returns the cache store settings, or false when no cache is set.
func (o *rootOptions) store() (driver.Config, bool) {
	switch {
	case o.valkeyAddr != "":
		return driver.Config{
			Driver:     driver.Valkey,
			Addrs:      []string{o.valkeyAddr},
			Password:   o.password,
			Standalone: o.standalone,
		}, true
	case o.redisAddr != "":
		return driver.Config{
			Driver:   driver.Redis,
			Addrs:    []string{o.redisAddr},
			Password: o.password,
		}, true
	}
	return driver.Config{}, false
}
