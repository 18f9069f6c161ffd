package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pathwell/ignore"
)

// newCheckCmd creates the check command: per-path exclusion queries.
func newCheckCmd(opts *rootOptions) *cobra.Command {
	var rootDir string
	var singleFile string

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report whether each path is excluded by the ignore rules",
		Long: `Check each path against the ignore rules and report its exclusion status.

By default every ignore file under the root directory is consulted, with
the file nearest a path taking precedence. With --file, only that single
ignore file's rules apply.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher, base, err := newMatcher(rootDir, singleFile, opts)
			if err != nil {
				return err
			}

			for _, arg := range args {
				excluded := matcher.IsIgnored(arg, isDirectory(base, arg))
				fmt.Fprintf(cmd.OutOrStdout(), "File: %s, Excluded: %v\n", arg, excluded)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rootDir, "root", ".", "Repository root the queries are resolved against")
	cmd.Flags().StringVar(&singleFile, "file", "", "Use only this ignore file instead of the whole hierarchy")

	return cmd
}

// newMatcher builds the query backend: a single-file matcher when an ignore
// file is named explicitly, otherwise the full hierarchy under rootDir. The
// returned root is the directory relative queries resolve against, which in
// single-file mode is the ignore file's own directory, not rootDir.
func newMatcher(rootDir, singleFile string, opts *rootOptions) (ignore.Ignorer, string, error) {
	if singleFile != "" {
		f, err := ignore.NewFile(singleFile)
		if err != nil {
			return nil, "", err
		}
		return f, f.Root(), nil
	}
	repo, err := ignore.NewRepositoryWithOptions(rootDir, ignore.Options{
		Filename:  opts.cfg.IgnoreFile,
		Lazy:      opts.cfg.Lazy,
		CacheSize: opts.cfg.CacheSize,
	})
	if err != nil {
		return nil, "", err
	}
	return repo, repo.Root(), nil
}

// isDirectory reports whether the queried path names an existing directory.
// Paths that do not exist are checked as plain files; exclusion queries do
// not require the path to exist.
func isDirectory(root, arg string) bool {
	if arg == "" {
		return false
	}
	path := arg
	if !filepath.IsAbs(arg) {
		path = filepath.Join(root, arg)
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
