package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached inputs and answers",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached input and answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			store, err := newCache(ctx, cfg.Cache.Backend, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			switch s := store.(type) {
			case *cache.FileCache:
				n, err := s.Clear()
				if err != nil {
					return err
				}
				printSuccess("Cleared %d cached entries", n)
				printDetail("Directory: %s", s.Dir())
			case *cache.RedisCache:
				n, err := s.Clear(ctx)
				if err != nil {
					return err
				}
				printSuccess("Cleared %d cached entries", n)
				printDetail("Redis: %s", cfg.Cache.RedisAddr)
			default:
				printInfo("Caching is disabled")
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
