package main

import "github.com/spf13/cobra"

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rgc",
		Short: "Inspect the render-graph compiler against bundled fixtures",
	}
	cmd.AddCommand(compileCmd())
	return cmd
}
