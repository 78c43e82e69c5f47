package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

var (
	searchDomain     string
	searchMaxResults int
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the design snippet library",
	Long: `Searches the snippet library with BM25 keyword ranking.

By default the unified index across all domains is searched and the
results are reranked by the detected design domains and platform.
Use --domain to search one domain's index directly.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchDomain, "domain", "d", "", "search one domain only (styles, colors, typography, ...)")
	searchCmd.Flags().IntVarP(&searchMaxResults, "max-results", "n", domain.DefaultSearchResults, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	ctx := cmd.Context()

	var results []domain.SearchResult
	var err error

	if searchDomain != "" {
		var d domain.Domain
		d, err = domain.ParseDomain(searchDomain)
		if err != nil {
			return err
		}
		results, err = searchService.SearchDomain(ctx, d, query, searchMaxResults)
	} else {
		results, err = searchService.SearchAll(ctx, query, searchMaxResults)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputResultsJSON(cmd, results)
	}
	return outputResultsTable(cmd, results)
}

func outputResultsJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultsTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	st := newOutputStyles()

	cmd.Println(st.Title.Render("Results:"))
	cmd.Println()
	for i := range results {
		doc := results[i].Document
		cmd.Printf("  [%d] %s %s %s\n",
			i+1,
			st.Name.Render(doc.Name()),
			st.Meta.Render("("+string(doc.Type)+")"),
			st.Score.Render(fmt.Sprintf("%.2f", results[i].Score)))
		if desc := doc.Data["Description"]; desc != "" {
			cmd.Printf("      %s\n", desc)
		}
		cmd.Println()
	}

	return nil
}
