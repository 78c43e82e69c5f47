package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List design domains and snippet counts",
	Args:  cobra.NoArgs,
	RunE:  runDomains,
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}

func runDomains(cmd *cobra.Command, _ []string) error {
	counts := searchService.DomainCounts()
	st := newOutputStyles()

	cmd.Println(st.Title.Render("Domains:"))
	cmd.Println()

	total := 0
	for _, d := range domain.AllDomains() {
		n, ok := counts[d]
		if !ok {
			continue
		}
		cmd.Printf("  %-12s %s\n", st.Name.Render(string(d)), st.Meta.Render(formatCount(n)))
		total += n
	}

	cmd.Println()
	cmd.Printf("  %d snippets total\n", total)
	return nil
}

func formatCount(n int) string {
	if n == 1 {
		return "1 snippet"
	}
	return fmt.Sprintf("%d snippets", n)
}
