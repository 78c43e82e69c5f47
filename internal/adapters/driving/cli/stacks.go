package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

var (
	stacksMaxResults    int
	platformsMaxResults int
)

var stacksCmd = &cobra.Command{
	Use:   "stacks [stack] [query]",
	Short: "Search framework-specific guidelines",
	Long: `With no arguments, lists the valid framework stacks.
With a stack and a query, searches that stack's guideline index.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runStacks,
}

var platformsCmd = &cobra.Command{
	Use:   "platforms [platform] [query]",
	Short: "Search platform design guidelines (ios, android, web)",
	Long: `With no arguments, lists the valid platform guideline sets.
With a platform and a query, searches that platform's guideline index.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runPlatforms,
}

func init() {
	stacksCmd.Flags().IntVarP(&stacksMaxResults, "max-results", "n", domain.DefaultSearchResults, "maximum number of results")
	platformsCmd.Flags().IntVarP(&platformsMaxResults, "max-results", "n", domain.DefaultSearchResults, "maximum number of results")
	rootCmd.AddCommand(stacksCmd)
	rootCmd.AddCommand(platformsCmd)
}

func runStacks(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		cmd.Println("Valid stacks:", strings.Join(domain.ValidStacks, ", "))
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("expected a stack and a query, e.g. stencil stacks react \"state management\"")
	}

	results, err := searchService.SearchStack(cmd.Context(), args[0], args[1], stacksMaxResults)
	if err != nil {
		return err
	}
	return outputResultsTable(cmd, results)
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		cmd.Println("Valid platforms:", strings.Join(domain.ValidPlatformSets, ", "))
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("expected a platform and a query, e.g. stencil platforms ios navigation")
	}

	results, err := searchService.SearchPlatform(cmd.Context(), args[0], args[1], platformsMaxResults)
	if err != nil {
		return err
	}
	return outputResultsTable(cmd, results)
}
