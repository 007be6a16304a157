package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vasthra/storefront/internal/catalog"
)

var fetchOutputFormat string

var catalogFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and print the normalized catalog",
	Long: `Fetch the remote feed and print the catalog after normalization.

Examples:
  storefront-cli catalog fetch                         # Table of collections
  storefront-cli catalog fetch --format json           # Full normalized tree as JSON
  storefront-cli catalog fetch --url https://api.example.com/catalog

Output formats:
  table - One row per subfolder with its item count (default)
  json  - The complete normalized catalog`,
	Run: catalogFetchHandler,
}

func init() {
	catalogFetchCmd.Flags().StringVar(&fetchOutputFormat, "format", "table", "output format: table or json")
	catalogCmd.AddCommand(catalogFetchCmd)
}

func catalogFetchHandler(cmd *cobra.Command, args []string) {
	client := newFeedClient()

	ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
	defer cancel()

	fetched, err := client.Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to fetch catalog: %v\n", err)
		os.Exit(1)
	}

	switch fetchOutputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(fetched); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to encode catalog: %v\n", err)
			os.Exit(1)
		}
	case "table":
		printCatalogTable(fetched)
	default:
		fmt.Fprintf(os.Stderr, "Error: Invalid format '%s'. Valid formats: table, json\n", fetchOutputFormat)
		os.Exit(1)
	}
}

func printCatalogTable(c catalog.Catalog) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tSUBFOLDER\tITEMS")
	for _, cat := range c {
		for _, sub := range cat.Subfolders {
			fmt.Fprintf(w, "%s\t%s\t%d\n", cat.Name, sub.Name, len(sub.Items))
		}
	}
	w.Flush()

	stats := catalog.CountStats(c)
	fmt.Printf("\n%d categories, %d subfolders, %d items\n", stats.Categories, stats.Subfolders, stats.Items)
}
