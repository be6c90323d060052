package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"catalog-go/internal/catalog"
	"catalog-go/internal/config"
	"catalog-go/internal/loader"
	"catalog-go/internal/logging"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ExitError carries a process exit code without an error message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// session is the state shared by every command of one invocation, or of one
// interactive shell.
type session struct {
	idx *catalog.Index
	cfg *config.Config
	log *zap.Logger

	// flags
	configPath string
	fromDir    string
	sample     bool
	logLevel   string
	jsonOut    bool
}

func newSession() *session {
	return &session{
		idx: catalog.New(),
		cfg: config.DefaultConfig(),
		log: zap.NewNop(),
	}
}

// setup loads configuration, starts logging and fills the catalog from the
// requested sources.
func (s *session) setup(progressOut io.Writer) error {
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.cfg = cfg

	logCfg := logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}
	if s.logLevel != "" {
		logCfg.Level = s.logLevel
	}
	logging.Init(logCfg)
	s.log = logging.L()

	if s.sample {
		sum := loader.LoadSample(s.idx)
		s.log.Debug("loaded sample data", zap.Int("added", sum.Added))
	}
	if s.fromDir != "" {
		if _, err := loader.FromDirectory(s.idx, s.fromDir, cfg.Exclude, progressOut, s.log); err != nil {
			return err
		}
	}
	return nil
}

// NewRootCommand creates and returns the root cobra command for catalog-go
func NewRootCommand() *cobra.Command {
	s := newSession()

	cmd := &cobra.Command{
		Use:   "catalog-go",
		Short: "In-memory catalog of files and directories",
		Long: `catalog-go keeps files and directories in a binary search tree ordered
directories first, then by case-insensitive name.

Entries come from a directory crawl (--from), the demo data set (--sample),
or commands run inside the interactive shell.`,
		Version: Version,
		// main prints errors; ExitError carries only a status code
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&s.configPath, "config", "c", "catalog.yaml", "Config file path")
	flags.StringVar(&s.fromDir, "from", "", "Directory to crawl into the catalog")
	flags.BoolVar(&s.sample, "sample", false, "Load the demo data set")
	flags.StringVar(&s.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&s.jsonOut, "json", false, "Print result lists as JSON")

	// Add subcommands
	cmd.AddCommand(sessionCommands(s)...)
	cmd.AddCommand(newShellCommand(s))
	cmd.AddCommand(newCompareCommand(s))

	return cmd
}
