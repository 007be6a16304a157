package main

import "github.com/vasthra/storefront/cmd/storefront-cli/cmd"

func main() {
	cmd.Execute()
}
