package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m3rciful/cryptonews/news/nav"
)

func newCatalogCmd() *cobra.Command {
	var variant string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List variants, categories, featured articles and dispatch entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Catalog(cmd.OutOrStdout(), variant)
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "catalog variant (default crypto)")
	return cmd
}

// Catalog prints the content and dispatch table of one variant.
func Catalog(w io.Writer, name string) error {
	v, err := nav.LookupVariant(name)
	if err != nil {
		return err
	}
	repo, err := v.Repository()
	if err != nil {
		return err
	}
	table, err := v.Table()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, headerStyle.Render("Variants"))
	for _, n := range nav.Variants() {
		marker := " "
		if n == v.Name {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %s\n", marker, n)
	}

	fmt.Fprintln(w, headerStyle.Render("\nCategories"))
	for _, c := range repo.Categories() {
		fmt.Fprintf(w, "  %-12s %-20s %d articles\n", c.Key, c.Name, len(c.Articles))
	}

	fmt.Fprintln(w, headerStyle.Render("\nFeatured"))
	for i := 0; i < repo.FeaturedCount(); i++ {
		a, _ := repo.Featured(i)
		fmt.Fprintf(w, "  %2d  #%-4d %-12s %s\n", i, a.ID, a.Category, a.Title)
	}

	fmt.Fprintln(w, headerStyle.Render("\nDispatch"))
	for _, e := range table.Entries() {
		pattern := e.Pattern
		if pattern == "" {
			pattern = "*"
		}
		fmt.Fprintf(w, "  %-8s %-18s %s\n", e.Kind, pattern, dimStyle.Render(e.Name))
	}
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("-", 40)))
	fmt.Fprintf(w, "%d commands, %d entries\n", len(table.Commands()), len(table.Entries()))
	return nil
}
