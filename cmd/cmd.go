package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ardanlabs/reaimgui-gen/config"
	"github.com/ardanlabs/reaimgui-gen/generator"
	"github.com/ardanlabs/reaimgui-gen/host"
	"github.com/ardanlabs/reaimgui-gen/parser"
)

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reaimgui-gen",
		Short: "Generate Go bindings from reaper_imgui_functions.h",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Disable usage printing on errors
			cmd.SilenceUsage = true

			verbose, _ := cmd.Flags().GetBool("verbose")
			return setupLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		NewGenerateCmd(),
		NewInspectCmd(),
	)

	return rootCmd
}

func setupLogging(verbose bool) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	parser.SetLogger(logger.Named("parser"))
	generator.SetLogger(logger.Named("generator"))
	host.SetLogger(logger.Named("host"))

	return nil
}

// loadHeader resolves the config for cmd and scans the header it names.
func loadHeader(cmd *cobra.Command) (*parser.Header, config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, config.Config{}, err
	}

	if err := applyFlags(cmd, &cfg); err != nil {
		return nil, config.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, config.Config{}, fmt.Errorf("invalid config: %w", err)
	}

	headerPath, _ := cmd.Flags().GetString("header")

	f, err := os.Open(headerPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("error reading header: %w", err)
	}
	defer f.Close()

	header, err := parser.Parse(f, cfg.ParserDialect())
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("error parsing header %s: %w", headerPath, err)
	}

	return header, cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	for name, dst := range map[string]*string{
		"package": &cfg.Package,
		"type":    &cfg.TypeName,
		"prefix":  &cfg.Dialect.Prefix,
		"source":  &cfg.Source,
	} {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if flags.Lookup("allow") != nil && flags.Changed("allow") {
		allow, err := flags.GetStringSlice("allow")
		if err != nil {
			return err
		}
		cfg.Dialect.AllowFailures = append(cfg.Dialect.AllowFailures, allow...)
	}

	return nil
}
