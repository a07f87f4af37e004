package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driven"
	"github.com/custodia-labs/murshid/internal/logger"
)

// lessonsLimit is the number of most recent negative feedback records
// folded into the prompt.
const lessonsLimit = 5

// generationErrorPrefix opens the diagnostic string returned in place of
// an answer when the generation provider fails.
const generationErrorPrefix = "خطأ في توليد الإجابة: "

// PromptComposer builds the generation prompt and produces the answer.
//
// The prompt always carries the fixed instructions: answer in formal
// Arabic only, use only the supplied context, and fall back to the
// refusal phrase when the context is insufficient. When negative
// feedback exists, a lessons-learned block built from the most recent
// negative records is appended so the model avoids repeating rated
// mistakes.
type PromptComposer struct {
	feedback driven.FeedbackStore
	llm      driven.LLMService
}

// NewPromptComposer creates a prompt composer. feedback may be nil, in
// which case prompts never carry a lessons-learned block.
func NewPromptComposer(feedback driven.FeedbackStore, llm driven.LLMService) *PromptComposer {
	return &PromptComposer{
		feedback: feedback,
		llm:      llm,
	}
}

// Compose builds the full generation prompt for a question and its
// retrieved context. A feedback store failure degrades to the baseline
// prompt.
func (c *PromptComposer) Compose(ctx context.Context, question, contextText string) string {
	var b strings.Builder

	b.WriteString("كن مساعدًا قانونيًا خبيرًا. اتبع القواعد:\n")
	b.WriteString("1. أجب بالعربية الفصحى فقط\n")
	b.WriteString("2. استخدم المعلومات التالية فقط:\n")
	b.WriteString(contextText)
	b.WriteString("\n")
	b.WriteString("3. إذا لا يوجد معلومات كافية قل \"" + domain.RefusalPhrase + "\"\n")

	if lessons := c.lessons(ctx); lessons != "" {
		b.WriteString("\n")
		b.WriteString(lessons)
	}

	b.WriteString("\nالسؤال: ")
	b.WriteString(question)
	b.WriteString("\nالإجابة:")

	return b.String()
}

// Answer composes the prompt and delegates generation to the LLM.
// A provider failure is converted into a user-visible diagnostic string
// rather than propagated.
func (c *PromptComposer) Answer(ctx context.Context, question, contextText string) string {
	if c.llm == nil {
		return generationErrorPrefix + domain.ErrLLMUnavailable.Error()
	}

	prompt := c.Compose(ctx, question, contextText)
	logger.Debug("Composed prompt: %d bytes", len(prompt))

	answer, err := c.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		logger.Warn("Answer generation failed: %v", err)
		return generationErrorPrefix + err.Error()
	}

	return strings.TrimSpace(answer)
}

// lessons builds the lessons-learned block from the most recent negative
// feedback records, most recent first. Returns "" when there is nothing
// to learn from.
func (c *PromptComposer) lessons(ctx context.Context) string {
	if c.feedback == nil {
		return ""
	}

	negatives, err := c.feedback.Negatives(ctx)
	if err != nil {
		logger.Warn("Reading negative feedback failed, composing baseline prompt: %v", err)
		return ""
	}
	if len(negatives) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("دروس مستفادة من تقييمات سابقة:\n")

	count := 0
	for i := len(negatives) - 1; i >= 0 && count < lessonsLimit; i-- {
		record := negatives[i]
		fmt.Fprintf(&b, "- السؤال: %s\n  الإجابة السابقة: %s\n  ملاحظة المراجع: %s\n",
			record.Query, record.Answer, record.Comment)
		count++
	}

	b.WriteString("تجنب تكرار هذه الأخطاء في إجابتك.\n")
	return b.String()
}
