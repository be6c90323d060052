package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"catalog-go/internal/display"
)

const shellMenu = `┌─ BST File System Navigator ───────────────────────────┐
│ 1. add        │ 2. mkdir      │ 3. find              │
│ 4. ext        │ 5. size       │ 6. largest           │
│ 7. total      │ 8. delete     │ 9. tree              │
│ 10. stats     │ 11. sample    │ 12. exit             │
│ 13. regex     │ 14. wildcard  │ list, help           │
└───────────────────────────────────────────────────────┘`

func newShellCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run catalog commands interactively against one session",
		Long: `Start an interactive session. Each line is split like a shell command
line and run as one of the catalog commands; numbers from the menu work as
well as names. Type exit or quit to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runShell(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func (s *session) runShell(in io.Reader, out, errOut io.Writer) error {
	fmt.Fprintln(out, shellMenu)
	s.writeStatus(out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		args, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch strings.ToLower(args[0]) {
		case "12", "exit", "quit":
			s.writeGoodbye(out)
			return nil
		}

		if err := s.runLine(args, out, errOut); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Fprintln(out)
	s.writeGoodbye(out)
	return nil
}

// runLine executes one tokenised line through a fresh command tree so that
// flags from earlier lines do not carry over.
func (s *session) runLine(args []string, out, errOut io.Writer) error {
	outerJSON := s.jsonOut
	defer func() { s.jsonOut = outerJSON }()

	var lineJSON bool
	root := &cobra.Command{
		Use:           "catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			s.jsonOut = outerJSON || lineJSON
		},
	}
	root.PersistentFlags().BoolVar(&lineJSON, "json", false, "Print result lists as JSON")
	root.AddCommand(sessionCommands(s)...)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	s.log.Debug("shell command", zap.Strings("args", args))

	cmd, err := root.ExecuteC()
	if err != nil && cmd == root {
		return fmt.Errorf("%w (type help for a list of commands)", err)
	}
	return err
}

func (s *session) writeStatus(out io.Writer) {
	stats := s.idx.Statistics()
	fmt.Fprintf(out, "Status: %d files, %d directories\n", stats.LeafCount, stats.ContainerCount)
	fmt.Fprintf(out, "Storage: %s\n", display.FormatSize(stats.TotalSize))
}

func (s *session) writeGoodbye(out io.Writer) {
	stats := s.idx.Statistics()
	fmt.Fprintln(out, "Session Summary:")
	fmt.Fprintf(out, " Files: %d\n", stats.LeafCount)
	fmt.Fprintf(out, " Directories: %d\n", stats.ContainerCount)
	fmt.Fprintf(out, " Total Operations: %d\n", stats.Operations)
	fmt.Fprintf(out, " Session Duration: %s\n", display.FormatDuration(stats.SessionDuration))
}
