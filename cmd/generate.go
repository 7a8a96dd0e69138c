package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ardanlabs/reaimgui-gen/generator"
)

func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the bindings file",
		Args:  cobra.NoArgs,
		RunE:  generateHandler,
	}

	cmd.Flags().String("header", "", "Path to reaper_imgui_functions.h")
	cmd.Flags().StringP("output", "o", "bindings.go", "Output file, - for stdout")
	cmd.Flags().StringP("package", "p", "", "Go package name")
	cmd.Flags().String("type", "", "Name of the wrapper type")
	cmd.Flags().String("prefix", "", "Library prefix stripped from every name")
	cmd.Flags().String("source", "", "Header name recorded in the generated banner")
	cmd.Flags().StringSlice("allow", nil, "Functions whose type translation may fail")
	_ = cmd.MarkFlagRequired("header")

	return cmd
}

func generateHandler(cmd *cobra.Command, args []string) error {
	header, cfg, err := loadHeader(cmd)
	if err != nil {
		return err
	}

	code, err := generator.New(cfg.GeneratorOptions(), header).Generate()
	if err != nil {
		return fmt.Errorf("error generating code: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		_, err := cmd.OutOrStdout().Write(code)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	if err := os.WriteFile(output, code, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", output, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Generated: %s (%d functions, %d constants, %d skipped)\n",
		output, len(header.Functions), len(header.Constants), len(header.Skipped))

	return nil
}
