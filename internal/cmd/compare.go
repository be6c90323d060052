package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"catalog-go/internal/catalog"
	"catalog-go/internal/compare"
	"catalog-go/internal/fingerprint"
	"catalog-go/internal/loader"
)

type crawl struct {
	dir string
	idx *catalog.Index
	fp  string
}

func newCompareCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <old-dir> <new-dir>",
		Short: "Catalog two directories and report the differences",
		Long: `Crawl both directories into separate catalogs and compare them by name
and size. Exits with status 1 when the catalogs differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			crawls := []*crawl{{dir: args[0]}, {dir: args[1]}}

			// Each crawl owns its own Index, so they can run side by side
			var g errgroup.Group
			for _, c := range crawls {
				g.Go(func() error {
					abs, err := filepath.Abs(c.dir)
					if err != nil {
						return fmt.Errorf("failed to get absolute path: %w", err)
					}
					c.dir = abs
					c.idx = catalog.New()
					if _, err := loader.FromDirectory(c.idx, abs, s.cfg.Exclude, nil, s.log); err != nil {
						return err
					}
					c.fp, err = fingerprint.Of(c.idx)
					if err != nil {
						return fmt.Errorf("failed to fingerprint %s: %w", abs, err)
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			oldC, newC := crawls[0], crawls[1]
			fmt.Fprintf(out, "Old: %s (%d items, fingerprint %s)\n", oldC.dir, oldC.idx.Count(), oldC.fp)
			fmt.Fprintf(out, "New: %s (%d items, fingerprint %s)\n\n", newC.dir, newC.idx.Count(), newC.fp)

			if oldC.fp == newC.fp {
				fmt.Fprintln(out, "No changes detected.")
				return nil
			}

			result := compare.Compare(oldC.idx, newC.idx)
			fmt.Fprintln(out, compare.FormatReport(result))
			if result.HasChanges() {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}
