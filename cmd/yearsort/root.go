package main

import (
	"github.com/spf13/cobra"

	"yearsort/internal/config"
	"yearsort/internal/logging"
	"yearsort/internal/organizer"
	"yearsort/internal/version"
)

func newRootCommand() *cobra.Command {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "yearsort [flags] DIRECTORY",
		Short: "Reorganize a directory tree into year-named folders",
		Long: `yearsort groups the files beneath DIRECTORY into four-digit year folders
based on each file's creation time (or, where the filesystem records none,
its last modification time). Relative subpaths are preserved beneath the
year folder, and source directories emptied by the moves are removed.

Runs are idempotent: existing year folders at the top level are never
rescanned, so yearsort can be re-run as new files arrive.`,
		Args:    cobra.ExactArgs(1),
		Version: version.String(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Root = args[0]
			if err := cfg.Normalize(); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logFormat := "console"
			if cfg.LogJSON {
				logFormat = "json"
			}
			logger, err := logging.New(logging.Options{
				Level:  cfg.LogLevel,
				Format: logFormat,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			r := newRenderer(cmd.OutOrStdout(), cfg)
			org := organizer.New(cfg, logger)
			org.OnAction(r.Action)

			res, err := org.Run(cmd.Context())
			if err != nil {
				return err
			}
			return r.Summary(res)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "report the plan without touching the filesystem")
	flags.BoolVar(&cfg.Copy, "copy", false, "copy files into year folders instead of moving them")
	flags.BoolVar(&cfg.IncludeRootName, "include-root-name", false, "place files under year/DIRECTORY-name instead of directly under the year")
	flags.BoolVar(&cfg.IncludeHidden, "hidden", false, "include hidden files and directories")
	flags.BoolVar(&cfg.MoveSymlinks, "move-symlinks", false, "relocate symbolic links instead of skipping them")
	flags.BoolVar(&cfg.FullPath, "full-path", false, "show absolute paths in output")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "output format: auto, plain, table, tree, or json")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic verbosity: debug, info, warn, or error")
	flags.BoolVar(&cfg.LogJSON, "log-json", false, "emit diagnostics as JSON")

	return rootCmd
}
