package usecase

import (
	"soroia/internal/assistant"
	"soroia/internal/catalog"
	"soroia/internal/chat"
	"soroia/internal/session"
	"soroia/pkg/log"
)

type implUseCase struct {
	store     *session.Store
	assistant assistant.UseCase
	catalog   catalog.UseCase
	l         log.Logger
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase.
func New(store *session.Store, assistant assistant.UseCase, catalog catalog.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		store:     store,
		assistant: assistant,
		catalog:   catalog,
		l:         l,
	}
}
