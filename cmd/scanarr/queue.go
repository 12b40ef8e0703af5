package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Show paths waiting for refresh",
	RunE:  runPendingCmd,
}

var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Dispatch pending refreshes immediately",
	Long:  "Drain the pending queue and refresh the media servers now, without waiting for the debounce timer.",
	RunE:  runFlushCmd,
}

func init() {
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(flushCmd)
}

func runPendingCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	pending, err := client.Pending()
	if err != nil {
		return fmt.Errorf("failed to fetch pending queue: %w", err)
	}

	if jsonOutput {
		printJSON(pending)
		return nil
	}

	if pending.Count == 0 {
		fmt.Println("Nothing pending")
		return nil
	}

	fmt.Printf("Pending (%d):\n\n", pending.Count)
	fmt.Printf("  %-30s │ %-6s │ %s\n", "TITLE", "TYPE", "PATH")
	fmt.Println("  ──────────────────────────────┼────────┼─────────")
	for _, item := range pending.Items {
		title := item.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		fmt.Printf("  %-30s │ %-6s │ %s\n", title, item.MediaType, item.TargetPath)
	}
	return nil
}

func runFlushCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	res, err := client.Flush()
	if err != nil {
		return fmt.Errorf("flush failed: %w", err)
	}

	if jsonOutput {
		printJSON(res)
		return nil
	}

	if res.Dispatched {
		fmt.Printf("Dispatched %d path(s) for refresh\n", res.Count)
	} else {
		fmt.Println(res.Message)
	}
	return nil
}
