package usecase

import (
	"context"
	"strings"

	"soroia/internal/artifact"
	"soroia/internal/chat"
	"soroia/internal/model"
)

// OpenDetail shows the catalog record of an artifact from an earlier reply.
func (uc *implUseCase) OpenDetail(ctx context.Context, input chat.OpenDetailInput) (chat.DetailOutput, error) {
	s, err := uc.store.Get(input.SessionID)
	if err != nil {
		return chat.DetailOutput{}, err
	}

	path := strings.TrimSpace(input.Path)
	found := false
	for _, t := range s.Turns() {
		for _, a := range t.Artifacts {
			if a.Path == path {
				found = true
			}
		}
	}
	if !found {
		return chat.DetailOutput{}, chat.ErrArtifactNotInSession
	}

	detail := model.Detail{Inventory: artifact.InventoryOf(path), Path: path}
	record, err := uc.catalog.Detail(ctx, detail.Inventory)
	if err != nil {
		uc.l.Warnf(ctx, "uc.OpenDetail catalog.Detail: %v", err)
		return chat.DetailOutput{}, err
	}

	s.SetDetail(detail)
	return chat.DetailOutput{Detail: detail, Record: record}, nil
}

func (uc *implUseCase) CloseDetail(ctx context.Context, id string) error {
	s, err := uc.store.Get(id)
	if err != nil {
		return err
	}
	s.ClearDetail()
	return nil
}
