package main

import (
	"fmt"

	"github.com/MikeSquared-Agency/studynotes/internal/extractor"
	"github.com/spf13/cobra"
)

var contract string

var parseCmd = &cobra.Command{
	Use:   "parse [FILE|-]",
	Short: "Extract, sanitize and validate raw model output",
	Long: `parse runs the response pipeline on saved model output without calling any
model. It exits non-zero when the output does not satisfy the contract.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		raw, err := readInput(cmd, path)
		if err != nil {
			return err
		}

		var out any
		switch contract {
		case "notes":
			out, err = extractor.DecodeNotes(string(raw))
		case "questions":
			out, err = extractor.DecodeQuestions(string(raw))
		case "relevance":
			out, err = extractor.DecodeRelevance(string(raw))
		default:
			return fmt.Errorf("unknown contract %q (want notes, questions or relevance)", contract)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", contract, err)
		}
		return printJSON(cmd, out)
	},
}

func init() {
	parseCmd.Flags().StringVar(&contract, "contract", "notes", "Output contract: notes, questions or relevance")
	rootCmd.AddCommand(parseCmd)
}
