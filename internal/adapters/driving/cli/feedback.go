package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

var (
	feedbackQuestion string
	feedbackAnswer   string
	feedbackHelpful  bool
	feedbackComment  string
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record and list answer ratings",
	Long: `Record ratings of past answers and list recorded feedback.

Negative ratings feed back into future answers: the prompt for each
question includes the most recent unsatisfactory answers so the model
can avoid repeating them.`,
	RunE: runFeedbackList,
}

var feedbackAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a rating of a past answer",
	RunE:  runFeedbackAdd,
}

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded feedback",
	RunE:  runFeedbackList,
}

func init() {
	feedbackAddCmd.Flags().StringVar(&feedbackQuestion, "question", "", "the question that was asked (required)")
	feedbackAddCmd.Flags().StringVar(&feedbackAnswer, "answer", "", "the answer that was given (required)")
	feedbackAddCmd.Flags().BoolVar(&feedbackHelpful, "helpful", false, "mark the answer as helpful")
	feedbackAddCmd.Flags().StringVar(&feedbackComment, "comment", "", "reviewer note")

	feedbackCmd.AddCommand(feedbackAddCmd)
	feedbackCmd.AddCommand(feedbackListCmd)
	rootCmd.AddCommand(feedbackCmd)
}

func runFeedbackAdd(cmd *cobra.Command, _ []string) error {
	if err := initFeedback(); err != nil {
		return err
	}
	if feedbackService == nil {
		return errors.New("feedback service not configured")
	}

	record := domain.FeedbackRecord{
		Query:     feedbackQuestion,
		Answer:    feedbackAnswer,
		Helpful:   feedbackHelpful,
		Comment:   feedbackComment,
		Timestamp: time.Now().UTC(),
	}

	if err := feedbackService.Submit(cmd.Context(), record); err != nil {
		return fmt.Errorf("record feedback: %w", err)
	}

	cmd.Println("Feedback recorded.")
	return nil
}

func runFeedbackList(cmd *cobra.Command, _ []string) error {
	if err := initFeedback(); err != nil {
		return err
	}
	if feedbackService == nil {
		return errors.New("feedback service not configured")
	}

	records, err := feedbackService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list feedback: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No feedback recorded.")
		return nil
	}

	for i, rec := range records {
		rating := "negative"
		if rec.Helpful {
			rating = "helpful"
		}
		cmd.Printf("  [%d] %s (%s)\n", i+1, rec.Timestamp.Format("2006-01-02 15:04"), rating)
		cmd.Printf("      Q: %s\n", rec.Query)
		cmd.Printf("      A: %s\n", rec.Answer)
		if rec.Comment != "" {
			cmd.Printf("      Note: %s\n", rec.Comment)
		}
		cmd.Println()
	}

	return nil
}
