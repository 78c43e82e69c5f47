package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

var (
	dsStyle    string
	dsMode     string
	dsPlatform string
	dsJSON     bool
)

var designSystemCmd = &cobra.Command{
	Use:   "design-system [query]",
	Short: "Compose a full design system for a query",
	Long: `Runs the product, style, color, typography and layout searches for
one query and assembles the top hits into a design-system bundle with
CSS variables and a markdown usage guide.`,
	Args: cobra.ExactArgs(1),
	RunE: runDesignSystem,
}

func init() {
	designSystemCmd.Flags().StringVar(&dsStyle, "style", "", "bias the style search toward a named style")
	designSystemCmd.Flags().StringVar(&dsMode, "mode", "", "color mode: light or dark (default light)")
	designSystemCmd.Flags().StringVar(&dsPlatform, "platform", "", "override platform detection (web, mobile-ios, mobile-android, mobile, cross-platform)")
	designSystemCmd.Flags().BoolVar(&dsJSON, "json", false, "output the bundle as JSON")
	rootCmd.AddCommand(designSystemCmd)
}

func runDesignSystem(cmd *cobra.Command, args []string) error {
	ds, err := designService.Build(cmd.Context(), domain.DesignSystemRequest{
		Query:    args[0],
		Style:    dsStyle,
		Mode:     dsMode,
		Platform: dsPlatform,
	})
	if err != nil {
		return fmt.Errorf("composing design system: %w", err)
	}

	if dsJSON {
		data, err := json.MarshalIndent(ds, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal design system: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(ds.Guide)
	return nil
}
