package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the food types in the corpus",
	Long:  `List the distinct food type labels in the corpus, usable with --category.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, snap, err := setup()
		if err != nil {
			return err
		}
		fmt.Println("any")
		for _, t := range snap.FoodTypes() {
			fmt.Println(t)
		}
		return nil
	},
}
