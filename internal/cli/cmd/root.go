// Package cmd provides the Cobra CLI for hyprbinds.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprbinds/internal/binds"
	"github.com/bnema/hyprbinds/internal/build"
	"github.com/bnema/hyprbinds/internal/config"
	"github.com/bnema/hyprbinds/internal/hypr"
	"github.com/bnema/hyprbinds/internal/logging"
	"github.com/bnema/hyprbinds/internal/render"
	"github.com/bnema/hyprbinds/internal/termio"
)

var (
	buildInfo build.Info

	flagNoGroup  bool
	flagWait     bool
	flagSort     bool
	flagDescribe bool
	flagFixture  string
	flagSubmap   string
	flagWidth    int

	rootCmd = &cobra.Command{
		Use:   "hyprbinds",
		Short: "Show Hyprland keybindings as a table",
		Long: `Hyprbinds queries the active Hyprland keybinding table and renders it
as a bordered table sized to the terminal.

Symmetric bind families (the four directional movewindow binds, numbered
workspace binds, ...) are collapsed into single rows unless --no-group is
given. The tool is read-only: it never modifies or re-issues a binding.

Examples:
  hyprbinds                # grouped table, config-file order
  hyprbinds -n -s          # one row per bind, sorted by keybind
  hyprbinds -w             # keep the table up until a key is pressed`,
		Args:          cobra.NoArgs,
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func init() {
	rootCmd.Flags().BoolVarP(&flagNoGroup, "no-group", "n", false, "do not group symmetric keybinds")
	rootCmd.Flags().BoolVarP(&flagWait, "wait", "w", false, "wait for a key press before exiting")
	rootCmd.Flags().BoolVarP(&flagSort, "sort", "s", false, "sort rows by keybind")
	rootCmd.Flags().BoolVar(&flagDescribe, "describe", false, "append bind descriptions to the action column")
	rootCmd.Flags().StringVar(&flagFixture, "fixture", "", "binds JSON file used when hyprctl is unavailable")
	rootCmd.Flags().StringVar(&flagSubmap, "submap", "", "only show binds from the named submap")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "table width (default: terminal width minus margin)")
}

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	masks := binds.DefaultModMasks()
	overrides, err := cfg.ModMaskOverrides()
	if err != nil {
		return err
	}
	for mask, label := range overrides {
		masks[mask] = label
	}

	fixture := cfg.FixturePath
	if flagFixture != "" {
		fixture = flagFixture
	}

	source := hypr.NewSource(cfg.HyprctlPath, fixture, log)
	bindList := source.Binds(cmd.Context())
	if flagSubmap != "" {
		bindList = hypr.FilterSubmap(bindList, flagSubmap)
	}

	var rows []binds.Row
	if flagNoGroup {
		rows = binds.NoGroup(bindList)
	} else {
		rows = binds.Group(bindList, masks)
	}

	displays, err := binds.Normalize(rows, masks, binds.Options{Describe: flagDescribe})
	if err != nil {
		return err
	}
	if flagSort {
		binds.SortByKey(displays)
	}

	width := flagWidth
	if width <= 0 {
		cols, _ := termio.Size(os.Stdout)
		width = cols - cfg.Margin
	}

	table := render.Table{Width: width, Theme: render.DefaultTheme()}
	if err := table.Render(os.Stdout, displays); err != nil {
		return err
	}

	if flagWait {
		return termio.WaitForKey(os.Stdin)
	}
	return nil
}
