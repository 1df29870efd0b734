// Package categorize implements the categorize command, which assigns a
// category to a snippet of bill text without running the full pipeline.
package categorize

import (
	"fmt"

	"akaul/billsnap/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Classify a snippet of bill text into a category",
	Long: `Categorize counts category keyword occurrences in the given text and
prints the best matching category, or Others when nothing matches.`,
	RunE: categorizeFunc,
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	if root.Text == "" {
		return fmt.Errorf("text to classify is required (use --text)")
	}

	category := root.App.Engine().ClassifyCategory(root.Text)
	fmt.Println(category)
	return nil
}

func init() {
	Cmd.Flags().StringVar(&root.Text, "text", "", "bill text to classify")
}
