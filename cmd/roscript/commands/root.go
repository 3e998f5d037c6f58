package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RaresPSCR/ROScript/pkg/config"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

type rootOptions struct {
	configPath  string
	logLevel    string
	color       string
	maxSteps    int
	profileMode string
	strict      bool
}

// NewRootCmd builds the command tree. Running it without a subcommand runs
// the named file.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "roscript [file]",
		Short:         "Interpreter for ROScript programs",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runFile(cmd, opts, args[0])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: $"+config.EnvConfigPath+", ./"+config.FileName+", ~/."+config.FileName+")")
	flags.StringVar(&opts.logLevel, "log-level", "", "override log_level from the config")
	flags.StringVar(&opts.color, "color", "", "override color from the config: auto, always or never")
	flags.IntVar(&opts.maxSteps, "max-steps", 0, "override max_steps from the config (0 = unlimited)")
	flags.StringVarP(&opts.profileMode, "profile", "p", "none", "enable profiling with pprof. Mode: none or one of: [cpu, mem, mutex, block, trace]")
	flags.BoolVar(&opts.strict, "strict", false, "do not run programs that have syntax errors")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newTokensCmd(opts),
		newASTCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI and reports a failure on stderr.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
	}
	return err
}

// session is the per-invocation state shared by every subcommand.
type session struct {
	cfg         config.Config
	log         *logrus.Entry
	colorize    bool
	profileStop func()
}

func (o *rootOptions) open(cmd *cobra.Command) (*session, error) {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)
	if o.logLevel != "" {
		lvl, err := logrus.ParseLevel(o.logLevel)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(lvl)
	}

	cfg, err := config.Resolve(o.configPath, logger)
	if err != nil {
		return nil, err
	}
	if err := o.override(cmd, &cfg); err != nil {
		return nil, err
	}

	lvl, _ := logrus.ParseLevel(cfg.LogLevel)
	logger.SetLevel(lvl)

	s := &session{
		cfg:      cfg,
		log:      logger.WithField("run_id", uuid.New().String()),
		colorize: colorEnabled(cfg.Color, cmd),
	}
	if s.profileStop, err = startProfiler(o.profileMode); err != nil {
		return nil, err
	}
	return s, nil
}

func (o *rootOptions) override(cmd *cobra.Command, cfg *config.Config) error {
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.color != "" {
		cfg.Color = o.color
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = o.maxSteps
	}
	return cfg.Validate()
}

func (s *session) close() {
	s.profileStop()
}

func colorEnabled(mode string, cmd *cobra.Command) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	// auto: only when diagnostics go to the process's own terminal.
	return cmd.ErrOrStderr() == os.Stderr && !color.NoColor
}

func startProfiler(mode string) (func(), error) {
	var option func(*profile.Profile)
	switch mode {
	case "none", "":
		return func() {}, nil
	case "cpu":
		option = profile.CPUProfile
	case "mem":
		option = profile.MemProfile
	case "mutex":
		option = profile.MutexProfile
	case "block":
		option = profile.BlockProfile
	case "trace":
		option = profile.TraceProfile
	default:
		return nil, errors.Errorf("unknown profile mode %q", mode)
	}
	return profile.Start(profile.ProfilePath("."), option, profile.Quiet).Stop, nil
}
