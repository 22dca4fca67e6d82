package utils

import "unicode"

type tokenSpan struct {
	start int // byte offset of first rune
	end   int // byte offset past last rune
}

// tokenize returns the byte spans of whitespace-delimited tokens. This is
// the token-equivalent length unit used for chunk sizing: close enough to
// model tokens for sizing purposes without shipping a tokenizer.
func tokenize(text string) []tokenSpan {
	var spans []tokenSpan
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, tokenSpan{start: start, end: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, tokenSpan{start: start, end: len(text)})
	}
	return spans
}

// CountTokens reports the token-equivalent length of text.
func CountTokens(text string) int {
	return len(tokenize(text))
}

// SplitTextByTokens splits text into chunks of at most chunkSize tokens
// with overlap tokens shared between neighbours, so passages are not lost
// at an arbitrary chunk boundary. Chunks are substrings of the original
// text, in document order. Deterministic: same text, same chunks.
func SplitTextByTokens(text string, chunkSize int, overlap int) []string {
	if chunkSize <= 0 {
		return nil
	}

	spans := tokenize(text)
	if len(spans) == 0 {
		return nil
	}
	if len(spans) <= chunkSize {
		return []string{text[spans[0].start:spans[len(spans)-1].end]}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var chunks []string
	for i := 0; i < len(spans); i += step {
		end := i + chunkSize
		if end > len(spans) {
			end = len(spans)
		}

		chunks = append(chunks, text[spans[i].start:spans[end-1].end])

		if end == len(spans) {
			break
		}
	}

	return chunks
}
