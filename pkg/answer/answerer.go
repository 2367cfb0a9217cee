package answer

import (
	"encoding/json"
	"fmt"
	"strings"

	"docqa/entities"
	"docqa/pkg/ai"
)

// Mode selects the model response contract.
type Mode string

const (
	// ModePlain returns the completion verbatim with no source excerpts.
	ModePlain Mode = "plain"
	// ModeStructured asks the model for JSON carrying the answer and the
	// verbatim clauses it was grounded on.
	ModeStructured Mode = "structured"
)

const systemPrompt = "You are a careful document analyst. Answer strictly from the provided context. " +
	"If the context is not sufficient to answer, say \"I don't know\". Do not make up an answer."

// Answerer produces a grounded answer for one question from retrieved chunks.
type Answerer struct {
	llm  ai.Client
	mode Mode
}

func New(llm ai.Client, mode Mode) *Answerer {
	if mode != ModeStructured {
		mode = ModePlain
	}
	return &Answerer{llm: llm, mode: mode}
}

// Answer builds the grounding prompt, calls the model once, and shapes the
// result. In structured mode a malformed model reply is recovered locally:
// the raw text becomes the answer and the context chunks become the sources.
// Only a failed model call is an error.
func (a *Answerer) Answer(question string, context []string) (entities.AnswerRecord, error) {
	out, err := a.llm.Complete(systemPrompt, renderPrompt(question, context, a.mode))
	if err != nil {
		return entities.AnswerRecord{}, err
	}
	if a.mode == ModePlain {
		return entities.AnswerRecord{Answer: out, Sources: []string{}}, nil
	}
	return parseStructured(out, context), nil
}

func renderPrompt(question string, context []string, mode Mode) string {
	var b strings.Builder
	b.WriteString("Use the following pieces of context to answer the user's question.\n")
	b.WriteString("If you don't know the answer based on the context, just say that you don't know. Do not make up an answer.\n")
	if mode == ModeStructured {
		b.WriteString("Reply ONLY valid JSON: {\"answer\":\"...\",\"source_clauses\":[\"...\"]}.\n")
		b.WriteString("Each source clause must be copied verbatim from the context.\n")
	}
	b.WriteString("\nContext:\n")
	for _, ch := range context {
		b.WriteString(ch)
		b.WriteString("\n---\n")
	}
	fmt.Fprintf(&b, "\nQuestion: %s\n\nAnswer:", question)
	return b.String()
}

// parseStructured decodes the structured reply and keeps only clauses that
// are verbatim substrings of the supplied context. Anything unparseable
// falls back to the raw text with the full chunks as sources.
func parseStructured(raw string, context []string) entities.AnswerRecord {
	var payload struct {
		Answer        string   `json:"answer"`
		SourceClauses []string `json:"source_clauses"`
	}
	if err := json.Unmarshal([]byte(stripFence(raw)), &payload); err != nil || payload.Answer == "" {
		return entities.AnswerRecord{Answer: raw, Sources: append([]string(nil), context...)}
	}
	sources := make([]string, 0, len(payload.SourceClauses))
	for _, cl := range payload.SourceClauses {
		if cl == "" {
			continue
		}
		for _, ch := range context {
			if strings.Contains(ch, cl) {
				sources = append(sources, cl)
				break
			}
		}
	}
	return entities.AnswerRecord{Answer: payload.Answer, Sources: sources}
}

// stripFence removes a ```json ... ``` wrapper some models add around JSON.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
