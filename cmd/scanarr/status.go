package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Daemon status and debounce state",
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(status)
		return nil
	}

	fmt.Printf("Server:   %s (%s)\n", serverURL, status.Status)
	fmt.Printf("Uptime:   %s\n", status.Uptime)
	fmt.Printf("Pending:  %d\n", status.Pending)
	if status.Armed && status.Deadline != nil {
		fmt.Printf("Refresh:  armed, fires in %s\n", time.Until(*status.Deadline).Round(time.Second))
	} else {
		fmt.Println("Refresh:  idle")
	}
	return nil
}
