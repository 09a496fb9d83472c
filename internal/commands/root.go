package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonhull/firebird-suite/daogen"
	"github.com/simonhull/firebird-suite/daogen/internal/output"
	"github.com/simonhull/firebird-suite/daogen/pkg/config"
	"github.com/simonhull/firebird-suite/daogen/pkg/host"
	"github.com/simonhull/firebird-suite/daogen/pkg/logger"
)

// EnvPrefix prefixes environment variables that override CLI flags, e.g.
// DAOGEN_CONFIG or DAOGEN_LOG_LEVEL.
const EnvPrefix = "DAOGEN"

// app carries state shared by every subcommand of one root command.
type app struct {
	v      *viper.Viper
	loader *config.Loader
}

// RootCmd creates the daogen command tree.
func RootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "daogen",
		Short: "Inspect and author DAO repository generation configs",
		Long: `daogen reads the configuration that drives DAO repository generation:
which assembly and namespace to scan, which namespace and directory to
generate into, and which generation options apply.

Configs are JSON (.json, .jsonc) or YAML (.yml, .yaml). Without an explicit
file, ./dao-repo-gen.yaml is used.`,
		Version:       daogen.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "Generation config file (default ./dao-repo-gen.yaml)")
	flags.String("data-root", "", "Application data root used for the default template path")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error, silent")
	flags.BoolP("verbose", "v", false, "Enable verbose output for debugging")
	_ = a.v.BindPFlags(flags)

	cmd.AddCommand(
		a.showCmd(),
		a.keyCmd(),
		a.initCmd(),
		a.convertCmd(),
		versionCmd(),
	)

	return cmd
}

// Execute runs the daogen command tree with os.Args.
func Execute() error {
	return RootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	verbose := a.v.GetBool("verbose")
	output.SetWriter(cmd.OutOrStdout())
	output.SetVerbose(verbose)

	level, err := logger.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	if verbose {
		level = logger.LevelDebug
	}

	log := logger.NewLogger(level, cmd.ErrOrStderr())
	logger.SetDefault(log)

	registry := config.DefaultRegistry()
	registry.Register(".jsonc", config.JSONC)
	a.loader = config.NewLoader(
		config.WithRegistry(registry),
		config.WithHost(a.hostContext()),
		config.WithLogger(log.WithFields(logger.F("component", "loader"))),
	)

	output.Verbose("supported formats: " + strings.Join(registry.Extensions(), ", "))
	return nil
}

// configPaths returns args, or the --config file, or the conventional default.
func (a *app) configPaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	if path := a.v.GetString("config"); path != "" {
		return []string{path}
	}
	return []string{config.DefaultFile}
}

func (a *app) hostContext() host.Context {
	return host.WithDataRoot(host.Process(), a.v.GetString("data-root"))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output.Info("daogen v" + daogen.Version)
		},
	}
}
