// pkg/ai/client.go

package ai

import "errors"

// ErrModel marks a failed language model call: transport error, bad status,
// or a response with no choices. Malformed-but-present content is not an
// error at this layer.
var ErrModel = errors.New("language model error")

// Client is the narrow contract the answering pipeline needs from a chat
// model: one system+user exchange, one completion back.
type Client interface {
	Complete(system, user string) (string, error)
}
