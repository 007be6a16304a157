package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vasthra/storefront/internal/catalog"
)

var (
	catalogFeedURL string
	catalogTimeout time.Duration
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the remote catalog feed",
	Long: `Commands for working with the remote catalog feed.

The feed URL is taken from the --url flag, or from the CATALOG_API_URL
environment variable (a .env file is honored) when the flag is absent.`,
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogFeedURL, "url", "", "feed URL (defaults to CATALOG_API_URL)")
	catalogCmd.PersistentFlags().DurationVar(&catalogTimeout, "timeout", 10*time.Second, "fetch timeout")
	rootCmd.AddCommand(catalogCmd)
}

// newFeedClient resolves the feed URL and builds a client, exiting with a
// usage error when no URL is available.
func newFeedClient() *catalog.Client {
	url := catalogFeedURL
	if url == "" {
		_ = godotenv.Load()
		url = os.Getenv("CATALOG_API_URL")
	}
	if url == "" {
		fmt.Fprintln(os.Stderr, "Error: No feed URL. Pass --url or set CATALOG_API_URL.")
		os.Exit(1)
	}
	return catalog.NewClient(url, catalogTimeout)
}
