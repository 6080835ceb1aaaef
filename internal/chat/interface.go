package chat

import (
	"context"
)

// UseCase exposes conversations to delivery layers.
type UseCase interface {
	CreateSession(ctx context.Context) SessionOutput
	GetSession(ctx context.Context, id string) (SessionOutput, error)
	DeleteSession(ctx context.Context, id string) error
	ResetSession(ctx context.Context, id string) SessionOutput
	SendMessage(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)
	OpenDetail(ctx context.Context, input OpenDetailInput) (DetailOutput, error)
	CloseDetail(ctx context.Context, id string) error
}
