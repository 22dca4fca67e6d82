package prompt

import (
	"strings"

	"pdf-chatbot-be/pkg/store"
)

// Builder assembles the grounded generation prompt: behavior policy first,
// then the retrieved chunk context, then the verbatim question.
type Builder struct {
	policy   string
	chunks   []store.SourceChunk
	question string
}

func NewBuilder(policy string, chunks []store.SourceChunk, question string) *Builder {
	return &Builder{
		policy:   policy,
		chunks:   chunks,
		question: question,
	}
}

func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writePolicy(&prompt)
	b.writeContext(&prompt)
	b.writeQuestion(&prompt)

	return prompt.String()
}

func (b *Builder) writePolicy(prompt *strings.Builder) {
	prompt.WriteString(b.policy)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("Context:\n")
	for i, chunk := range b.chunks {
		if i > 0 {
			prompt.WriteString("\n\n")
		}
		prompt.WriteString(chunk.Text)
	}
	prompt.WriteString("\n\n")
}

func (b *Builder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("Question: ")
	prompt.WriteString(b.question)
	prompt.WriteString("\n\nAnswer:")
}
