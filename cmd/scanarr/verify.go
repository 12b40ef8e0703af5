package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <title>",
	Short: "Check whether an item is visible in the media servers",
	Long: `Search each live media server for a title and report whether it shows
up in the library. Useful after a refresh to confirm the scan worked.

Examples:
  scanarr verify "The Matrix" --year 1999
  scanarr verify "Severance" --on emby`,
	Args: cobra.ExactArgs(1),
	RunE: runVerifyCmd,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().String("year", "", "Release year to match")
	verifyCmd.Flags().String("on", "", "Only check this server")
}

func runVerifyCmd(cmd *cobra.Command, args []string) error {
	title := args[0]
	year, _ := cmd.Flags().GetString("year")
	only, _ := cmd.Flags().GetString("on")

	client := NewClient(serverURL)

	var names []string
	if only != "" {
		names = []string{only}
	} else {
		servers, err := client.Servers()
		if err != nil {
			return fmt.Errorf("failed to fetch servers: %w", err)
		}
		for _, s := range servers {
			if s.Live {
				names = append(names, s.Name)
			}
		}
	}

	if len(names) == 0 {
		fmt.Println("No live media servers to check")
		return nil
	}

	results := make(map[string]bool, len(names))
	for _, name := range names {
		res, err := client.Has(name, title, year)
		if err != nil {
			fmt.Printf("  %-12s error: %v\n", name, err)
			continue
		}
		results[name] = res.Found
		if !jsonOutput {
			state := "not found"
			if res.Found {
				state = "found"
			}
			fmt.Printf("  %-12s %s\n", name, state)
		}
	}

	if jsonOutput {
		printJSON(results)
	}
	return nil
}
