package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ardanlabs/reaimgui-gen/cmd"
)

func main() {
	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}
