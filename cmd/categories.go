package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zhubert/gigglegen/internal/catalog"
	"github.com/zhubert/gigglegen/internal/config"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List joke categories and how many jokes each holds",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}
	printCategories(cmd.OutOrStdout(), cat, cfg)
	return nil
}

// printCategories writes one line per category, marking the startup category
func printCategories(w io.Writer, cat *catalog.Catalog, cfg *config.Config) {
	current := cfg.Category()
	for _, id := range catalog.Categories() {
		marker := " "
		if id == current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-12s %-10s %3d\n", marker, id, id.Label(), cat.Count(id))
	}
}
