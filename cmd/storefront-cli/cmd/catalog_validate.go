package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vasthra/storefront/internal/catalog"
)

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Fetch the feed and report shape problems",
	Long: `Fetch the remote feed and validate its shape.

The command reports how many records the raw feed carries, how many survive
normalization, and how many are dropped (missing image, missing identifier,
or duplicated). It exits non-zero when the feed cannot be fetched or is not
a JSON array of categories.

Examples:
  storefront-cli catalog validate
  storefront-cli catalog validate --url https://api.example.com/catalog`,
	Run: catalogValidateHandler,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}

func catalogValidateHandler(cmd *cobra.Command, args []string) {
	client := newFeedClient()

	ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
	defer cancel()

	body, err := client.FetchBody(ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrUpstreamStatus) {
			fmt.Fprintf(os.Stderr, "Error: Feed endpoint is unhealthy: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: Failed to fetch feed: %v\n", err)
		}
		os.Exit(1)
	}

	_, report, err := catalog.Inspect(body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Feed is not a JSON array of categories: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Feed OK: %d raw item records\n", report.RawItems)
	fmt.Printf("Normalized: %d categories, %d subfolders, %d items\n",
		report.Stats.Categories, report.Stats.Subfolders, report.Stats.Items)
	if report.DroppedItems > 0 {
		fmt.Printf("Dropped during normalization: %d (missing image or ID, or duplicate)\n", report.DroppedItems)
	} else {
		fmt.Println("No records dropped during normalization.")
	}
}
