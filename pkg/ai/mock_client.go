// pkg/ai/mock_client.go

package ai

type mockClient struct{}

// NewMock returns a client that never leaves the process. Used when no LLM
// endpoint is configured so the rest of the service stays exercisable.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Complete(system, user string) (string, error) {
	return "I don't know (mock model, no LLM endpoint configured).", nil
}
