package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ardanlabs/reaimgui-gen/parser"
)

func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the declarations found in a header",
		Args:  cobra.NoArgs,
		RunE:  inspectHandler,
	}

	cmd.Flags().String("header", "", "Path to reaper_imgui_functions.h")
	cmd.Flags().String("prefix", "", "Library prefix stripped from every name")
	cmd.Flags().StringSlice("allow", nil, "Functions whose type translation may fail")
	_ = cmd.MarkFlagRequired("header")

	return cmd
}

func inspectHandler(cmd *cobra.Command, args []string) error {
	header, _, err := loadHeader(cmd)
	if err != nil {
		return err
	}

	writeInspection(cmd.OutOrStdout(), header)

	return nil
}

func writeInspection(w io.Writer, header *parser.Header) {
	var data [][]string

	for _, o := range header.OpaqueTypes {
		data = append(data, []string{strconv.Itoa(o.Line), "type", o.Name, ""})
	}
	for _, fn := range header.Functions {
		data = append(data, []string{strconv.Itoa(fn.Line), "func", fn.Name, signature(fn)})
	}
	for _, c := range header.Constants {
		data = append(data, []string{strconv.Itoa(c.Line), "const", c.Name, ""})
	}
	for _, s := range header.Skipped {
		data = append(data, []string{strconv.Itoa(s.Line), "skipped", s.Name, s.Reason})
	}

	table := newTable(w)
	table.SetHeader([]string{"LINE", "KIND", "NAME", "DETAIL"})
	table.AppendBulk(data)
	table.Render()

	fmt.Fprintf(w, "\n%d types, %d functions, %d constants, %d skipped\n",
		len(header.OpaqueTypes), len(header.Functions), len(header.Constants), len(header.Skipped))
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

func signature(fn parser.Function) string {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = p.Type.String() + " " + p.Name
	}
	return fmt.Sprintf("%s(%s)", fn.ReturnType, strings.Join(params, ", "))
}
