package port

import (
	"context"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
)

// ChatModel is the hosted completion backend. Enabled reports whether a
// model is configured at all; Complete may still fail at call time.
type ChatModel interface {
	Enabled() bool
	Complete(ctx context.Context, messages []domain.ChatMessage) (string, error)
}
