package rag

import "errors"

var (
	// ErrNotConfigured means no LLM backend credential is available. Callers
	// surface this as a friendly message instead of failing the request.
	ErrNotConfigured = errors.New("rag: llm provider is not configured")

	// ErrDimensionMismatch means the embedding backend returned vectors whose
	// length does not match the index column.
	ErrDimensionMismatch = errors.New("rag: embedding dimension mismatch")

	// ErrUnknownTemplateType is returned for draft template types outside the
	// supported set.
	ErrUnknownTemplateType = errors.New("rag: unknown template type")
)
