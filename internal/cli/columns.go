package cli

import (
	"fmt"
	"os"

	"github.com/ankestat/ankestat/internal/survey"
	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns <file.csv>",
	Short: "List the scale-like and groupable columns of a survey CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		sc, err := buildScaleConfig()
		if err != nil {
			return err
		}
		likert, groupable, err := survey.InspectColumns(raw, sc)
		if err != nil {
			if pe, ok := survey.AsProcessingError(err); ok {
				return fmt.Errorf("%s: %s", pe.Code, pe.Message)
			}
			return err
		}

		fmt.Printf("Scale columns (%d..%d):\n", sc.Min, sc.Max)
		for _, c := range likert {
			fmt.Printf("  %s\n", c.Label)
		}
		fmt.Println("Groupable columns:")
		for _, c := range groupable {
			fmt.Printf("  %s\n", c.Label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
