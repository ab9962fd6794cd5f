package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/paulitower/pkg/cache"
	perrors "github.com/matzehuels/paulitower/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the compile cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheInfoCommand())

	return cmd
}

// cacheDir returns the file cache directory: the configured dir, else
// $XDG_CACHE_HOME/paulitower.
func (c *CLI) cacheDir() (string, error) {
	if dir := c.cfg.Cache.Dir; dir != "" {
		return dir, nil
	}
	return cache.DefaultDir()
}

// fileBackend fails unless the file backend is configured.
func (c *CLI) fileBackend(action string) error {
	if b := c.cfg.Cache.Backend; b != "" && b != cache.BackendFile {
		return perrors.New(perrors.ErrCodeUnsupported, "cannot %s the %s cache backend", action, b)
	}
	return nil
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all cached compile results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.fileBackend("clear"); err != nil {
				return err
			}
			dir, err := c.cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo(c.Err, "Cache is empty")
				return nil
			}
			count, err := clearDir(dir)
			if err != nil {
				return perrors.Wrap(perrors.ErrCodeCache, err, "clear %s", dir)
			}

			printSuccess(c.Err, "Cleared %d cached entries", count)
			printDetail(c.Err, "Directory: %s", dir)
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
			if err := c.fileBackend("locate"); err != nil {
				return err
			}
			dir, err := c.cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(c.Out, dir)
			return nil
		},
	}
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the cache configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := c.cfg.Cache
			backend := cc.Backend
			if backend == "" {
				backend = cache.BackendFile
			}
			printKeyValue(c.Out, "backend", backend)
			switch backend {
			case cache.BackendFile:
				dir, err := c.cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				printKeyValue(c.Out, "dir", dir)
			case cache.BackendRedis:
				printKeyValue(c.Out, "redis", cc.RedisURL)
			case cache.BackendMemory:
				printKeyValue(c.Out, "entries", fmt.Sprint(cc.MemoryEntries))
			}
			printKeyValue(c.Out, "ttl", cc.TTL.String())
			return nil
		},
	}
}

// clearDir removes every file below dir, then the emptied subdirectories,
// and returns the number of files removed. dir itself is kept.
func clearDir(dir string) (int, error) {
	var files, dirs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		} else {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	count := 0
	for _, f := range files {
		if err := os.Remove(f); err == nil {
			count++
		}
	}
	for i := len(dirs) - 1; i >= 0; i-- {
		_ = os.Remove(dirs[i])
	}
	return count, nil
}
