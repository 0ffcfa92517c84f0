package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dexinfo.com/internal/icon"
)

var iconCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "icon <name>",
	Short: "Render an icon as SVG to stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if list, _ := flags.GetBool("list"); list {
			for _, name := range icon.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}
		if len(args) != 1 {
			return fmt.Errorf("icon name required, one of %v", icon.Names())
		}

		var props icon.Props
		props.Width, _ = flags.GetString("width")
		props.Color, _ = flags.GetString("color")
		props.ViewBox, _ = flags.GetString("view-box")
		props.Spin, _ = flags.GetBool("spin")

		svg, err := icon.Render(args[0], props)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(svg))
		return err
	},
}

func init() { //nolint:gochecknoinits
	iconCmd.Flags().String("width", icon.DefaultWidth, "icon width, e.g. 20px or 1.5em")
	iconCmd.Flags().String("color", icon.DefaultColor, "theme colour key or CSS colour")
	iconCmd.Flags().String("view-box", "", "override the icon viewBox")
	iconCmd.Flags().Bool("spin", false, "add a rotation animation")
	iconCmd.Flags().Bool("list", false, "list available icons")
	rootCmd.AddCommand(iconCmd)
}
