package dotaudit

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotaudit/internal/version"
	"github.com/arthur-debert/dotaudit/pkg/audit"
	"github.com/arthur-debert/dotaudit/pkg/config"
	"github.com/arthur-debert/dotaudit/pkg/environment"
	"github.com/arthur-debert/dotaudit/pkg/filesystem"
	"github.com/arthur-debert/dotaudit/pkg/logging"
	"github.com/arthur-debert/dotaudit/pkg/paths"
	"github.com/arthur-debert/dotaudit/pkg/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagKeys maps command-line flags to the config keys they override
var flagKeys = map[string]string{
	"skip-ok":          config.KeySkipOK,
	"skip-unsupported": config.KeySkipUnsupported,
	"programs":         config.KeyProgramsDir,
	"pattern":          config.KeyPattern,
	"format":           config.KeyFormat,
	"log-verbose":      config.KeyLogVerbosity,
}

// NewRootCmd creates and returns the root command. Running it without a
// subcommand performs the audit.
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		cfg        *config.Config
		configFile string
		noAdvisory bool
	)

	rootCmd := &cobra.Command{
		Use:     "dotaudit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(config.LoadOptions{
				ConfigFile: configFile,
				Flags:      changedFlags(cmd.Flags()),
			})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			if noAdvisory {
				loaded.Advisory = false
			}
			cfg = loaded

			logging.SetupLogger(cfg.LogVerbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Str("config", cfg.Source).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, cfg)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Audit switches
	rootCmd.Flags().BoolP("skip-ok", "v", false, MsgFlagSkipOK)
	rootCmd.Flags().BoolP("skip-unsupported", "q", false, MsgFlagSkipUnsupported)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().String("programs", "", MsgFlagPrograms)
	rootCmd.PersistentFlags().String("pattern", "", MsgFlagPattern)
	rootCmd.PersistentFlags().String("format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&noAdvisory, "no-advisory", false, MsgFlagNoAdvisory)
	rootCmd.PersistentFlags().Count("log-verbose", MsgFlagLogVerbose)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return report.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagDirname("programs")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConfigCmd(func() *config.Config { return cfg }))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// changedFlags returns the config overrides for flags set on the command line
func changedFlags(flags *pflag.FlagSet) map[string]interface{} {
	out := map[string]interface{}{}
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			out[key] = f.Value.String()
		}
	})
	return out
}

func runAudit(cmd *cobra.Command, cfg *config.Config) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	if cfg.Advisory {
		advisories := environment.Check(environment.XDGVariables(), os.LookupEnv)
		environment.Write(stderr, advisories, cfg.OutputFormat() == report.FormatTerminal)
	}

	log.Info().
		Str("programs", cfg.ProgramsDir).
		Str("pattern", cfg.Pattern).
		Bool("skip_ok", cfg.SkipOK).
		Bool("skip_unsupported", cfg.SkipUnsupported).
		Str("format", cfg.Format).
		Msg("Auditing program documents")

	fsys := filesystem.NewOS()
	auditor := audit.New(
		fsys,
		paths.NewResolver(fsys),
		report.New(cfg.OutputFormat(), stdout),
		stderr,
	)

	if _, err := auditor.Run(audit.Options{
		ProgramsDir: cfg.ProgramsDir,
		Pattern:     cfg.Pattern,
		Filter:      cfg.Filter(),
	}); err != nil {
		return fmt.Errorf(MsgErrAudit, err)
	}
	return nil
}
