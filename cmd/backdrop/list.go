package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/backdrop/effect"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List effects and presets",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	fmt.Println("Effects:")
	for i, name := range effect.Names() {
		fmt.Printf("  %d  %s\n", i+1, name)
	}

	presets, err := loadPresets()
	if err != nil {
		return err
	}
	fmt.Println("\nPresets:")
	for _, p := range presets {
		fmt.Printf("  %-12s %-10s quality=%-7s accent=%s\n", p.Name, p.Effect, p.Quality, p.Accent)
	}
	return nil
}
