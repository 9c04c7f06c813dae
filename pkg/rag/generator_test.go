package rag

import (
	"context"
	"strings"
	"testing"

	"legal-assistant-be/internal/constant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Answer(t *testing.T) {
	provider := &fakeLLM{answer: "Tanık Ahmet Yılmaz'dır."}
	g := NewGenerator(provider)

	chunks := chunkFixture(uuid.New(), uuid.New(), "ifade.pdf", 2)
	answer, err := g.Answer(context.Background(), "Tanık kim?", chunks)
	require.NoError(t, err)
	assert.Equal(t, "Tanık Ahmet Yılmaz'dır.", answer)

	require.Len(t, provider.lastHistory, 2)
	assert.Equal(t, "system", provider.lastHistory[0].Role)
	assert.Equal(t, constant.AnswerSystemPrompt, provider.lastHistory[0].Content)
	assert.Contains(t, provider.lastHistory[1].Content, "Tanık kim?")
	assert.Contains(t, provider.lastHistory[1].Content, "chunk 0\n\nchunk 1")
	assert.InDelta(t, 0.3, provider.lastOptions.Temperature, 1e-9)
}

func TestBuildContext_JoinsBareChunkTexts(t *testing.T) {
	chunks := chunkFixture(uuid.New(), uuid.New(), "ifade.pdf", 3)

	got := BuildContext(chunks)
	assert.Equal(t, "chunk 0\n\nchunk 1\n\nchunk 2", got)
	assert.NotContains(t, got, "ifade.pdf", "context carries chunk text only, sources travel separately")
	assert.Empty(t, BuildContext(nil))
}

func TestGenerator_AnswerNotConfigured(t *testing.T) {
	g := NewGenerator(nil)

	_, err := g.Answer(context.Background(), "soru", nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, g.Configured())
}

func TestGenerator_GenerateDraft(t *testing.T) {
	tests := []struct {
		templateType string
		wantInPrompt []string
	}{
		{
			templateType: TemplateTypeDilekce,
			wantInPrompt: []string{"dilekçe", "Dava No: 2024/123", "Müvekkil: Ayşe Demir"},
		},
		{
			templateType: TemplateTypeSozlesme,
			wantInPrompt: []string{"sözleşme", "Müşteri: Ayşe Demir"},
		},
		{
			templateType: TemplateTypeTutanak,
			wantInPrompt: []string{"tutanak", "Dava No: 2024/123"},
		},
	}

	fields := CaseFields{
		CaseNumber:  "2024/123",
		ClientName:  "Ayşe Demir",
		Title:       "Kira Uyuşmazlığı",
		Description: "Kira bedeli ödenmedi.",
	}

	for _, tt := range tests {
		t.Run(tt.templateType, func(t *testing.T) {
			provider := &fakeLLM{answer: "taslak"}
			g := NewGenerator(provider)

			draft, err := g.GenerateDraft(context.Background(), tt.templateType, fields, "ilgili içerik")
			require.NoError(t, err)
			assert.Equal(t, "taslak", draft)

			require.Len(t, provider.lastHistory, 2)
			assert.Equal(t, constant.DraftSystemPrompt, provider.lastHistory[0].Content)
			prompt := provider.lastHistory[1].Content
			for _, want := range tt.wantInPrompt {
				assert.Contains(t, prompt, want)
			}
			assert.Contains(t, prompt, "ilgili içerik")
			assert.InDelta(t, 0.5, provider.lastOptions.Temperature, 1e-9)
		})
	}
}

func TestGenerator_GenerateDraft_EmptyFieldsDefaulted(t *testing.T) {
	provider := &fakeLLM{answer: "taslak"}
	g := NewGenerator(provider)

	_, err := g.GenerateDraft(context.Background(), TemplateTypeDilekce, CaseFields{}, "")
	require.NoError(t, err)

	// Only case number and client fall back to the placeholder; title,
	// description and the context block stay empty.
	prompt := provider.lastHistory[1].Content
	assert.Equal(t, 2, strings.Count(prompt, constant.FieldNotSpecified))
}

func TestGenerator_GenerateDraft_UnknownType(t *testing.T) {
	provider := &fakeLLM{answer: "taslak"}
	g := NewGenerator(provider)

	_, err := g.GenerateDraft(context.Background(), "vekaletname", CaseFields{}, "")
	assert.ErrorIs(t, err, ErrUnknownTemplateType)
	assert.Zero(t, provider.calls, "invalid types must be rejected before any model call")
}

func TestGenerator_GenerateDraft_UnknownTypeBeatsNotConfigured(t *testing.T) {
	g := NewGenerator(nil)

	_, err := g.GenerateDraft(context.Background(), "bilinmeyen", CaseFields{}, "")
	assert.ErrorIs(t, err, ErrUnknownTemplateType)
}
