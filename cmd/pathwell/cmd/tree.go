package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathwell/ignore"
)

// newTreeCmd creates the tree command: list every non-excluded path.
func newTreeCmd(opts *rootOptions) *cobra.Command {
	var rootDir string
	var singleFile string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "List every path under the root that is not excluded",
		Long: `Walk the directory tree and print each path the ignore rules do not
exclude, one per line, relative to the root. Entries named .git are skipped
and excluded directories are not descended into.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var included []string

			if singleFile != "" {
				f, err := ignore.NewFile(singleFile)
				if err != nil {
					return err
				}
				included, err = f.IncludedFiles()
				if err != nil {
					return err
				}
			} else {
				repo, err := ignore.NewRepositoryWithOptions(rootDir, ignore.Options{
					Filename:  opts.cfg.IgnoreFile,
					Lazy:      opts.cfg.Lazy,
					CacheSize: opts.cfg.CacheSize,
				})
				if err != nil {
					return err
				}
				included, err = repo.IncludedPaths()
				if err != nil {
					return err
				}
			}

			for _, path := range included {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rootDir, "root", ".", "Directory tree to walk")
	cmd.Flags().StringVar(&singleFile, "file", "", "Use only this ignore file instead of the whole hierarchy")

	return cmd
}
