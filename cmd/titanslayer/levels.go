package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	ids := catalog.IDs()
	maxNameLen := 4 // "Name" header
	for _, id := range ids {
		def, _ := catalog.Level(id)
		if len(def.Name) > maxNameLen {
			maxNameLen = len(def.Name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %-12s  %-8s  %s\n", "ID", maxNameLen, "Name", "Map", "Size", "Enemies")
	fmt.Printf("  %-3s  %-*s  %-12s  %-8s  %s\n", "--", maxNameLen, "----", "---", "----", "-------")
	for _, id := range ids {
		def, _ := catalog.Level(id)
		size := fmt.Sprintf("%dx%d", def.Grid.Width(), def.Grid.Height())
		final := ""
		if catalog.IsFinal(id) {
			final = "  (final)"
		}
		fmt.Printf("  %-3d  %-*s  %-12s  %-8s  %d%s\n", id, maxNameLen, def.Name, def.Map, size, def.EnemyCount, final)
	}
	return nil
}
