package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"catalog-go/internal/catalog"
	"catalog-go/internal/display"
	"catalog-go/internal/fingerprint"
	"catalog-go/internal/loader"
)

// sessionCommands returns the commands that operate on the session catalog.
// The numeric aliases follow the interactive menu.
func sessionCommands(s *session) []*cobra.Command {
	return []*cobra.Command{
		newAddCommand(s),
		newMkdirCommand(s),
		newFindCommand(s),
		newExtCommand(s),
		newSizeCommand(s),
		newLargestCommand(s),
		newTotalCommand(s),
		newDeleteCommand(s),
		newTreeCommand(s),
		newStatsCommand(s),
		newSampleCommand(s),
		newListCommand(s),
		newRegexCommand(s),
		newWildcardCommand(s),
	}
}

func (s *session) writeEntries(cmd *cobra.Command, title string, entries []catalog.Entry) error {
	if s.jsonOut {
		return display.WriteJSON(cmd.OutOrStdout(), entries)
	}
	display.WriteList(cmd.OutOrStdout(), title, entries, s.cfg.ListLimit)
	return nil
}

func parseSize(arg string) (uint64, error) {
	size, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: must be a non-negative integer", arg)
	}
	return size, nil
}

func newAddCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "add <name> [size]",
		Aliases: []string{"1", "create", "file"},
		Short:   "Add a file",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := s.cfg.DefaultFileSize
			if len(args) == 2 {
				parsed, err := parseSize(args[1])
				if err != nil {
					return err
				}
				size = parsed
			}

			out := cmd.OutOrStdout()
			if !s.idx.AddLeaf(args[0], size) {
				fmt.Fprintf(out, "Failed to create file: %s (it already exists)\n", args[0])
				return nil
			}
			s.log.Debug("added file", zap.String("name", args[0]), zap.Uint64("size", size))
			fmt.Fprintf(out, "File created successfully: %s\n", args[0])
			return nil
		},
	}
}

func newMkdirCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "mkdir <name>",
		Aliases: []string{"2", "directory"},
		Short:   "Add a directory",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !s.idx.AddContainer(args[0]) {
				fmt.Fprintf(out, "Failed to create directory: %s (it already exists)\n", args[0])
				return nil
			}
			s.log.Debug("added directory", zap.String("name", args[0]))
			fmt.Fprintf(out, "Directory created successfully: %s\n", args[0])
			return nil
		},
	}
}

func newFindCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "find <name>",
		Aliases: []string{"3", "search"},
		Short:   "Find a file by name",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			entry, ok := s.idx.Search(args[0])
			if !ok {
				fmt.Fprintf(out, "File not found: %s\n", args[0])
				return nil
			}
			if s.jsonOut {
				return display.WriteJSON(out, []catalog.Entry{entry})
			}
			fmt.Fprintf(out, "File found: %s\n", display.Row(entry))
			return nil
		},
	}
}

func newExtCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "ext <extension>",
		Aliases: []string{"4", "extension", "filter"},
		Short:   "List files with an extension",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := s.idx.ByExtension(args[0])
			return s.writeEntries(cmd, fmt.Sprintf("Files with extension '%s'", args[0]), results)
		},
	}
}

func newSizeCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "size <min> <max>",
		Aliases: []string{"5", "range"},
		Short:   "List files within a size range in bytes",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := parseSize(args[0])
			if err != nil {
				return err
			}
			hi, err := parseSize(args[1])
			if err != nil {
				return err
			}
			if lo > hi {
				lo, hi = hi, lo
			}

			results := s.idx.BySizeRange(lo, hi)
			title := fmt.Sprintf("Files between %s and %s", display.FormatSize(lo), display.FormatSize(hi))
			return s.writeEntries(cmd, title, results)
		},
	}
}

func newLargestCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "largest [count]",
		Aliases: []string{"6", "biggest"},
		Short:   "List the largest files",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := s.cfg.LargestCount
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid count %q: must be a positive integer", args[0])
				}
				count = n
			}

			results := s.idx.TopBySize(count)
			return s.writeEntries(cmd, fmt.Sprintf("Top %d largest files", len(results)), results)
		},
	}
}

func newTotalCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "total",
		Aliases: []string{"7", "calculate"},
		Short:   "Print the total size of all files",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total := s.idx.TotalSize()
			fmt.Fprintf(cmd.OutOrStdout(), "Total size: %s (%d bytes)\n", display.FormatSize(total), total)
			return nil
		},
	}
}

func newDeleteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"8", "remove", "rm"},
		Short:   "Delete a file, or a directory when no file has that name",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !s.idx.Remove(args[0]) {
				fmt.Fprintf(out, "Item not found: %s\n", args[0])
				return nil
			}
			s.log.Debug("deleted item", zap.String("name", args[0]))
			fmt.Fprintf(out, "Deleted: %s\n", args[0])
			return nil
		},
	}
}

func newTreeCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "tree",
		Aliases: []string{"9", "display"},
		Short:   "Draw the search tree",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			display.WriteTree(cmd.OutOrStdout(), s.idx.Outline(), s.idx.Levels())
			return nil
		},
	}
}

func newStatsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Aliases: []string{"10", "statistics"},
		Short:   "Print catalog statistics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := fingerprint.Of(s.idx)
			if err != nil {
				return fmt.Errorf("failed to fingerprint catalog: %w", err)
			}
			display.WriteStats(cmd.OutOrStdout(), s.idx.Statistics(), fp)
			return nil
		},
	}
}

func newSampleCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "sample",
		Aliases: []string{"11", "demo"},
		Short:   "Load the demo data set",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := loader.LoadSample(s.idx)
			fmt.Fprintf(cmd.OutOrStdout(), "Sample data loaded: %d added, %d already present\n", sum.Added, sum.Duplicates)
			return nil
		},
	}
}

func newListCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every entry in order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := s.idx.Collect(func(catalog.Entry) bool { return true })
			return s.writeEntries(cmd, "Catalog", all)
		},
	}
}

type patternFlags struct {
	target        string
	dirs          bool
	caseSensitive bool
}

func (f *patternFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.target, "target", "t", "name", "Match against name, extension or both")
	cmd.Flags().BoolVarP(&f.dirs, "dirs", "d", false, "Include directories")
	cmd.Flags().BoolVar(&f.caseSensitive, "case-sensitive", false, "Match case exactly")
}

func (f *patternFlags) options() catalog.PatternOptions {
	return catalog.PatternOptions{
		Target:            catalog.ParseTarget(f.target),
		IncludeContainers: f.dirs,
		CaseSensitive:     f.caseSensitive,
	}
}

func newRegexCommand(s *session) *cobra.Command {
	var flags patternFlags
	cmd := &cobra.Command{
		Use:     "regex <pattern>",
		Aliases: []string{"13", "pattern"},
		Short:   "List entries matching a regular expression",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := s.idx.MatchPattern(args[0], flags.options())
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Matches for /%s/ on %s", args[0], flags.options().Target)
			return s.writeEntries(cmd, title, results)
		},
	}
	flags.register(cmd)
	return cmd
}

func newWildcardCommand(s *session) *cobra.Command {
	var flags patternFlags
	cmd := &cobra.Command{
		Use:     "wildcard <glob>",
		Aliases: []string{"14", "glob"},
		Short:   "List entries matching a wildcard (* and ?)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := s.idx.WildcardSearch(args[0], flags.options())
			title := fmt.Sprintf("Matches for '%s' on %s", args[0], flags.options().Target)
			return s.writeEntries(cmd, title, results)
		},
	}
	flags.register(cmd)
	return cmd
}
