package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify <path>",
	Short: "Queue a path for refresh",
	Long: `Tell the daemon new content landed at the given path. The path joins
the pending queue and is refreshed after the debounce window closes.

Examples:
  scanarr notify /data/movies/Heat (1995)/Heat.mkv --title "Heat" --type movie
  scanarr notify "/data/tv/Severance/S02E01.mkv" --title Severance --type tv`,
	Args: cobra.ExactArgs(1),
	RunE: runNotifyCmd,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.Flags().String("title", "", "Media title")
	notifyCmd.Flags().String("year", "", "Release year")
	notifyCmd.Flags().String("type", "", "Media type (movie or tv)")
	notifyCmd.Flags().String("category", "", "Content category")
}

func runNotifyCmd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	year, _ := cmd.Flags().GetString("year")
	mediaType, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")

	client := NewClient(serverURL)
	err := client.Notify(TransferRequest{
		Title:      title,
		Year:       year,
		MediaType:  mediaType,
		Category:   category,
		TargetPath: args[0],
	})
	if err != nil {
		return fmt.Errorf("notify failed: %w", err)
	}

	fmt.Println("Queued")
	return nil
}
