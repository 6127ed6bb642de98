package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("hyprbinds %s\n", buildInfo.Version)
		fmt.Printf("  commit: %s\n", buildInfo.Commit)
		fmt.Printf("  built:  %s\n", buildInfo.BuildDate)
		fmt.Printf("  go:     %s\n", buildInfo.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
