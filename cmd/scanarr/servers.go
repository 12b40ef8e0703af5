package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "List configured media servers and their liveness",
	RunE:  runServersCmd,
}

func init() {
	rootCmd.AddCommand(serversCmd)
}

func runServersCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	servers, err := client.Servers()
	if err != nil {
		return fmt.Errorf("failed to fetch servers: %w", err)
	}

	if jsonOutput {
		printJSON(servers)
		return nil
	}

	if len(servers) == 0 {
		fmt.Println("No media servers configured")
		return nil
	}

	for _, s := range servers {
		state := "ok"
		if !s.Live {
			state = "UNREACHABLE"
		}
		fmt.Printf("  %-12s %s\n", s.Name, state)
	}
	return nil
}
