package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

func TestFeedbackCmd_Use(t *testing.T) {
	assert.Equal(t, "feedback", feedbackCmd.Use)
}

func TestFeedbackAddCmd_Flags(t *testing.T) {
	for _, name := range []string{"question", "answer", "helpful", "comment"} {
		assert.NotNil(t, feedbackAddCmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestFeedbackAdd_SubmitsRecord(t *testing.T) {
	feedback := &mockFeedbackService{}
	cleanup := setupTestServices(&mockQueryService{}, feedback)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"feedback", "add",
		"--question", "ما نص المادة الأولى؟",
		"--answer", "نصت المادة على كذا.",
		"--comment", "الإجابة ناقصة"})
	defer func() {
		rootCmd.SetArgs(nil)
		feedbackQuestion, feedbackAnswer, feedbackComment = "", "", ""
		feedbackHelpful = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.Len(t, feedback.records, 1)

	record := feedback.records[0]
	assert.Equal(t, "ما نص المادة الأولى؟", record.Query)
	assert.False(t, record.Helpful)
	assert.Equal(t, "الإجابة ناقصة", record.Comment)
	assert.False(t, record.Timestamp.IsZero())
	assert.Contains(t, buf.String(), "Feedback recorded.")
}

func TestFeedbackList_PrintsRecords(t *testing.T) {
	feedback := &mockFeedbackService{
		records: []domain.FeedbackRecord{
			{Query: "سؤال", Answer: "إجابة", Helpful: true},
		},
	}
	cleanup := setupTestServices(&mockQueryService{}, feedback)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"feedback", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Q: سؤال")
	assert.Contains(t, buf.String(), "helpful")
}

func TestFeedbackList_Empty(t *testing.T) {
	cleanup := setupTestServices(&mockQueryService{}, &mockFeedbackService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"feedback", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No feedback recorded.")
}
