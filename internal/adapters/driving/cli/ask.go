package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the document",
	Long: `Asks a single question against the ingested document.

The document is ingested on first use, which may take a while for large
documents. Answers are in Modern Standard Arabic and cite the passages
they were grounded on.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := bootstrap(ctx); err != nil {
		return err
	}
	if queryService == nil {
		return errors.New("query service not configured")
	}

	answer, err := queryService.Ask(ctx, args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAnswerJSON(cmd, answer)
	}

	return outputAnswerText(cmd, answer)
}

func outputAnswerJSON(cmd *cobra.Command, answer *domain.Answer) error {
	data, err := json.MarshalIndent(answer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnswerText(cmd *cobra.Command, answer *domain.Answer) error {
	cmd.Println(answer.Text)

	if len(answer.Sources) > 0 {
		cmd.Println()
		cmd.Println("المصادر:")
		for i, src := range answer.Sources {
			cmd.Printf("  [%d] صفحة %d (%.2f)\n", i+1, src.Chunk.Page+1, src.Similarity)
		}
	}

	if answer.FollowUp != "" {
		cmd.Println()
		cmd.Println(answer.FollowUp)
	}

	return nil
}
