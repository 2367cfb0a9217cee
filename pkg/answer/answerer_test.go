package answer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/pkg/ai"
)

// scriptedClient returns a fixed completion and records the prompt it saw.
type scriptedClient struct {
	reply  string
	err    error
	prompt string
}

func (s *scriptedClient) Complete(system, user string) (string, error) {
	s.prompt = system + "\n" + user
	return s.reply, s.err
}

var testContext = []string{
	"Section 1. Claims must be filed within 30 days.",
	"Section 2. Premiums are due monthly.",
}

func TestAnswer_PlainMode(t *testing.T) {
	llm := &scriptedClient{reply: "Claims must be filed within 30 days."}
	a := New(llm, ModePlain)

	rec, err := a.Answer("How many days to file a claim?", testContext)
	require.NoError(t, err)
	assert.Equal(t, "Claims must be filed within 30 days.", rec.Answer)
	assert.Empty(t, rec.Sources)

	// the grounding prompt carries the context and the refusal instruction
	assert.Contains(t, llm.prompt, "Section 1.")
	assert.Contains(t, llm.prompt, "say that you don't know")
	assert.Contains(t, llm.prompt, "How many days to file a claim?")
}

func TestAnswer_StructuredMode(t *testing.T) {
	llm := &scriptedClient{reply: `{"answer":"30 days.","source_clauses":["Claims must be filed within 30 days."]}`}
	a := New(llm, ModeStructured)

	rec, err := a.Answer("How many days to file a claim?", testContext)
	require.NoError(t, err)
	assert.Equal(t, "30 days.", rec.Answer)
	require.Len(t, rec.Sources, 1)
	assert.Equal(t, "Claims must be filed within 30 days.", rec.Sources[0])
	assert.Contains(t, llm.prompt, "source_clauses")
}

func TestAnswer_StructuredMode_FencedJSON(t *testing.T) {
	llm := &scriptedClient{reply: "```json\n{\"answer\":\"Monthly.\",\"source_clauses\":[\"Premiums are due monthly.\"]}\n```"}
	a := New(llm, ModeStructured)

	rec, err := a.Answer("How often are premiums due?", testContext)
	require.NoError(t, err)
	assert.Equal(t, "Monthly.", rec.Answer)
	assert.Equal(t, []string{"Premiums are due monthly."}, rec.Sources)
}

func TestAnswer_StructuredMode_DropsFabricatedClauses(t *testing.T) {
	llm := &scriptedClient{reply: `{"answer":"30 days.","source_clauses":["Claims must be filed within 30 days.","This sentence is not in the context.",""]}`}
	a := New(llm, ModeStructured)

	rec, err := a.Answer("q", testContext)
	require.NoError(t, err)
	assert.Equal(t, []string{"Claims must be filed within 30 days."}, rec.Sources)
}

func TestAnswer_StructuredMode_FallbackOnMalformed(t *testing.T) {
	llm := &scriptedClient{reply: "I could not produce JSON, but the answer is 30 days."}
	a := New(llm, ModeStructured)

	rec, err := a.Answer("q", testContext)
	require.NoError(t, err)
	assert.Equal(t, llm.reply, rec.Answer)
	// fallback uses the retrieved chunks themselves, never leaves sources unset
	assert.Equal(t, testContext, rec.Sources)
}

func TestAnswer_SourcesAreSubstringsOfContext(t *testing.T) {
	replies := []string{
		`{"answer":"a","source_clauses":["Claims must be filed within 30 days.","Premiums are due monthly."]}`,
		`{"answer":"b","source_clauses":["completely made up"]}`,
		"not json at all",
	}
	for _, reply := range replies {
		a := New(&scriptedClient{reply: reply}, ModeStructured)
		rec, err := a.Answer("q", testContext)
		require.NoError(t, err)
		for _, src := range rec.Sources {
			found := false
			for _, ch := range testContext {
				if strings.Contains(ch, src) {
					found = true
					break
				}
			}
			assert.True(t, found, "source %q not a substring of any context chunk", src)
		}
	}
}

func TestAnswer_ModelError(t *testing.T) {
	llm := &scriptedClient{err: ai.ErrModel}
	a := New(llm, ModePlain)

	_, err := a.Answer("q", testContext)
	assert.ErrorIs(t, err, ai.ErrModel)
}

func TestNew_UnknownModeFallsBackToPlain(t *testing.T) {
	a := New(&scriptedClient{reply: "x"}, Mode("weird"))
	assert.Equal(t, ModePlain, a.mode)
}
