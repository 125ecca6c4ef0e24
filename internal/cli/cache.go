package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ventriglisse/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the solve cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCacheClear(cmd.Context())
		},
	}
}

func (c *CLI) runCacheClear(ctx context.Context) error {
	ch, err := c.openCache(ctx)
	if err != nil {
		return err
	}
	defer ch.Close()

	switch ch := ch.(type) {
	case *cache.FileCache:
		count, _, err := ch.Stats()
		if err != nil {
			return err
		}
		if err := ch.Clear(ctx); err != nil {
			return err
		}
		printSuccess("Cleared %d cached entries", count)
		printDetail("Directory: %s", ch.Dir())
	case *cache.RedisCache:
		if err := ch.Clear(ctx); err != nil {
			return err
		}
		printSuccess("Cleared redis cache")
		printDetail("Prefix: %s", c.Config.Cache.Prefix)
	default:
		printInfo("Cache is disabled")
	}
	return nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch c.Config.Cache.Backend {
			case cache.BackendRedis:
				fmt.Fprintf(cmd.OutOrStdout(), "redis://%s/%s*\n", c.Config.Cache.RedisAddr, c.Config.Cache.Prefix)
			case cache.BackendNone:
				fmt.Fprintln(cmd.OutOrStdout(), "none")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), c.fileCacheDir())
			}
			return nil
		},
	}
}

func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	opts := c.Config.CacheOptions()
	if opts.Backend == cache.BackendFile || opts.Backend == "" {
		opts.Dir = c.fileCacheDir()
	}
	return cache.Open(ctx, opts)
}

func (c *CLI) fileCacheDir() string {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir
	}
	return cache.DefaultDir()
}
