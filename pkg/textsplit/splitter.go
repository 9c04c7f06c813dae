package textsplit

import "errors"

// ErrInvalidChunkConfig is returned when the overlap is not smaller than the
// chunk size, which would make the sliding window loop forever.
var ErrInvalidChunkConfig = errors.New("textsplit: overlap must be smaller than chunk size")

// SplitText splits a long string into chunks of approximately chunkSize
// characters with an overlap to preserve context at chunk boundaries.
// Character counting is rune-based so multi-byte text is never cut inside
// a code point. Empty input yields no chunks.
func SplitText(text string, chunkSize int, overlap int) ([]string, error) {
	if chunkSize <= 0 || overlap < 0 || overlap >= chunkSize {
		return nil, ErrInvalidChunkConfig
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	totalLen := len(runes)
	if totalLen <= chunkSize {
		return []string{text}, nil
	}

	step := chunkSize - overlap

	var chunks []string
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}
		chunks = append(chunks, string(runes[i:end]))
		if end == totalLen {
			break
		}
	}

	return chunks, nil
}
