package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"launchdex/internal/application"
	"launchdex/internal/config"
	"launchdex/internal/domain"
)

var (
	configPath string
	cfg        *config.Config
	cfgSource  string
	passArgs   []string // arguments of a command that does not parse flags
	logger     = log.NewWithOptions(os.Stderr, log.Options{Prefix: "launchdex"})
)

var errNoCommand = errors.New("no command given")

var rootCmd = &cobra.Command{
	Use:   "launchdex",
	Short: "Index installed programs and launch them from a line picker",
	Long: `launchdex keeps an index of launchable programs found in the start menu
and on the executable search path, and ranks them by how often and how
recently you started them.

  launchdex index      rebuild the program index
  launchdex run        pick a program and launch it

Configuration is read from config.toml in the launchdex config directory
(or --config / LAUNCHDEX_CONFIG) and LAUNCHDEX_* environment variables.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd == cmd.Root() || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if cmd.DisableFlagParsing {
			var path string
			path, passArgs = splitConfigFlag(args)
			if path != "" {
				configPath = path
			}
		}
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SetOut(os.Stderr)
		_ = cmd.Usage()
		if len(args) > 0 {
			return fmt.Errorf("unknown command %q", args[0])
		}
		return errNoCommand
	},
}

// Execute runs the root command and exits with a non-zero status on failure
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	if args == nil {
		args = []string{} // nil makes cobra read os.Args
	}
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	return exitCode(err)
}

// exitCode logs err the way its kind calls for and returns the exit status.
// Cancelling the picker is not a failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, application.ErrSelectionCancelled):
		logger.Info("selection cancelled")
		return 0
	case application.IsUserFacing(err):
		logger.Error(choiceMessage(err))
		return 1
	default:
		logger.Error(err.Error())
		return 1
	}
}

// choiceMessage reports a bad picker answer by itself, without the context
// it was wrapped in on the way up.
func choiceMessage(err error) string {
	var unmatched *domain.UnmatchedSelectionError
	if errors.As(err, &unmatched) {
		return unmatched.Error()
	}
	var malformed *domain.MalformedArgumentsError
	if errors.As(err, &malformed) {
		return malformed.Error()
	}
	return err.Error()
}

// splitConfigFlag takes a leading --config flag off args. Commands that hand
// their arguments on verbatim receive root flags unparsed.
func splitConfigFlag(args []string) (string, []string) {
	if len(args) == 0 {
		return "", args
	}
	switch first := args[0]; {
	case first == "--config" || first == "-c":
		if len(args) < 2 {
			return "", args
		}
		return args[1], args[2:]
	case strings.HasPrefix(first, "--config="):
		return strings.TrimPrefix(first, "--config="), args[1:]
	}
	return "", args
}

func loadConfig() error {
	path := configPath
	if path == "" {
		path = os.Getenv("LAUNCHDEX_CONFIG")
	}

	c, source, err := config.Load(config.LoadOptions{ConfigFilePath: path})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c
	cfgSource = source
	logger.SetLevel(cfg.Level())
	if source != "" {
		logger.Debug("loaded config", "path", source)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a config.toml file")
}
