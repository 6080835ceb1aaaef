package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"soroia/internal/catalog"
	"soroia/internal/chat"
	"soroia/internal/model"
	"soroia/internal/session"
)

type replUseCase struct {
	chat.UseCase
	messages []string
	resets   int
	details  []string
}

func (m *replUseCase) CreateSession(ctx context.Context) chat.SessionOutput {
	return chat.SessionOutput{ID: "cli", Turns: []model.Turn{{Role: model.RoleAssistant, Content: session.Greeting}}}
}

func (m *replUseCase) ResetSession(ctx context.Context, id string) chat.SessionOutput {
	m.resets++
	return m.CreateSession(ctx)
}

func (m *replUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	m.messages = append(m.messages, input.Message)
	reply := model.Turn{
		Role:      model.RoleAssistant,
		Content:   "Pintó varias obras.",
		Artifacts: []model.Artifact{{Path: "imagenes/00445/00445_1.jpg", Label: "00445"}},
	}
	return chat.SendMessageOutput{
		Reply:    reply,
		NewTurns: []model.Turn{
			{Role: model.RoleUser, Content: input.Message},
			{Role: model.RoleSystem, Content: "Intención: DATA_LOOKUP"},
			reply,
		},
	}, nil
}

func (m *replUseCase) OpenDetail(ctx context.Context, input chat.OpenDetailInput) (chat.DetailOutput, error) {
	m.details = append(m.details, input.Path)
	return chat.DetailOutput{
		Detail: model.Detail{Inventory: "00445", Path: input.Path},
		Record: catalog.Record{Inventory: "00445", Fields: []catalog.Field{{Label: "Título", Value: "Niños en la playa"}}},
	}, nil
}

func (m *replUseCase) CloseDetail(ctx context.Context, id string) error { return nil }

func TestREPL(t *testing.T) {
	uc := &replUseCase{}
	in := strings.NewReader("¿Qué pintó en 1909?\n\n/detalle imagenes/00445/00445_1.jpg\n/reset\n/salir\nignored\n")
	var out bytes.Buffer

	if err := repl(context.Background(), uc, in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(uc.messages) != 1 || uc.messages[0] != "¿Qué pintó en 1909?" {
		t.Errorf("unexpected messages: %v", uc.messages)
	}
	if uc.resets != 1 {
		t.Errorf("expected one reset, got %d", uc.resets)
	}
	if len(uc.details) != 1 || uc.details[0] != "imagenes/00445/00445_1.jpg" {
		t.Errorf("unexpected details: %v", uc.details)
	}

	text := out.String()
	for _, want := range []string{
		prefixAssistant + session.Greeting,
		prefixDebug + "Intención: DATA_LOOKUP",
		prefixAssistant + "Pintó varias obras.",
		"· 00445 (imagenes/00445/00445_1.jpg)",
		"Título: Niños en la playa",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, prefixAssistant+"¿Qué pintó") {
		t.Errorf("user turns should not be echoed")
	}
}

func TestREPLStopsAtEOF(t *testing.T) {
	uc := &replUseCase{}
	var out bytes.Buffer
	if err := repl(context.Background(), uc, strings.NewReader(""), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(uc.messages) != 0 {
		t.Errorf("expected no messages, got %v", uc.messages)
	}
}
