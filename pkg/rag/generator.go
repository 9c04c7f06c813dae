package rag

import (
	"context"
	"fmt"
	"strings"

	"legal-assistant-be/internal/constant"
	"legal-assistant-be/pkg/llm"
)

// Supported draft template types.
const (
	TemplateTypeDilekce  = "dilekce"
	TemplateTypeSozlesme = "sozlesme"
	TemplateTypeTutanak  = "tutanak"
)

const (
	answerTemperature = 0.3
	draftTemperature  = 0.5
)

// CaseFields carries the case metadata substituted into draft prompts.
// An empty case number or client name is rendered as "Belirtilmemiş".
type CaseFields struct {
	CaseNumber  string
	ClientName  string
	Title       string
	Description string
}

// Generator turns retrieved context into grounded answers and legal draft
// documents. A nil provider means no LLM credential was configured; every
// call then returns ErrNotConfigured.
type Generator struct {
	provider llm.LLMProvider
}

func NewGenerator(provider llm.LLMProvider) *Generator {
	return &Generator{provider: provider}
}

// Configured reports whether an LLM backend is available.
func (g *Generator) Configured() bool {
	return g.provider != nil
}

// Answer produces a grounded answer to the question using only the supplied
// chunks as context.
func (g *Generator) Answer(ctx context.Context, question string, chunks []*StoredChunk) (string, error) {
	if g.provider == nil {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf(constant.AnswerPromptTemplate, buildContext(chunks), question)

	history := []llm.Message{
		{Role: "system", Content: constant.AnswerSystemPrompt},
		{Role: "user", Content: prompt},
	}

	return g.provider.Chat(ctx, history, llm.WithTemperature(answerTemperature))
}

// GenerateDraft produces a legal document draft of the given template type.
// Unknown types are rejected with ErrUnknownTemplateType before any model
// call is made.
func (g *Generator) GenerateDraft(ctx context.Context, templateType string, fields CaseFields, contextText string) (string, error) {
	prompt, err := buildDraftPrompt(templateType, fields, contextText)
	if err != nil {
		return "", err
	}

	if g.provider == nil {
		return "", ErrNotConfigured
	}

	history := []llm.Message{
		{Role: "system", Content: constant.DraftSystemPrompt},
		{Role: "user", Content: prompt},
	}

	return g.provider.Chat(ctx, history, llm.WithTemperature(draftTemperature))
}

func buildDraftPrompt(templateType string, fields CaseFields, contextText string) (string, error) {
	caseNumber := orNotSpecified(fields.CaseNumber)
	client := orNotSpecified(fields.ClientName)

	switch templateType {
	case TemplateTypeDilekce:
		return fmt.Sprintf(constant.DilekcePromptTemplate, caseNumber, client, fields.Title, fields.Description, contextText), nil
	case TemplateTypeSozlesme:
		return fmt.Sprintf(constant.SozlesmePromptTemplate, client, fields.Title, fields.Description, contextText), nil
	case TemplateTypeTutanak:
		return fmt.Sprintf(constant.TutanakPromptTemplate, caseNumber, client, fields.Title, fields.Description, contextText), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplateType, templateType)
	}
}

// BuildContext renders retrieved chunks as a prompt context block, chunk
// texts joined by blank lines.
func BuildContext(chunks []*StoredChunk) string {
	return buildContext(chunks)
}

func buildContext(chunks []*StoredChunk) string {
	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = c.Text
	}
	return strings.Join(parts, "\n\n")
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return constant.FieldNotSpecified
	}
	return s
}
