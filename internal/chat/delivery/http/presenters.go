package http

import (
	"strings"
	"time"

	"soroia/internal/chat"
	"soroia/internal/model"
)

// --- Request DTOs ---

type sendMessageReq struct {
	SessionID string `json:"-"` // populated from URI param
	Message   string `json:"message"`
}

func (r sendMessageReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r sendMessageReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

// ---

type openDetailReq struct {
	SessionID string `json:"-"`
	Path      string `json:"path"`
}

func (r openDetailReq) validate() error {
	if strings.TrimSpace(r.Path) == "" {
		return errPathRequired
	}
	return nil
}

func (r openDetailReq) toInput() chat.OpenDetailInput {
	return chat.OpenDetailInput{SessionID: r.SessionID, Path: r.Path}
}

// ---

type imageReq struct {
	Path string `form:"path"`
}

func (r imageReq) validate() error {
	if strings.TrimSpace(r.Path) == "" {
		return errPathRequired
	}
	return nil
}

// --- Response DTOs ---

type artifactResp struct {
	Path      string `json:"path"`
	Label     string `json:"label"`
	Inventory string `json:"inventory"`
}

type turnResp struct {
	Role          string         `json:"role"`
	Content       string         `json:"content"`
	Artifacts     []artifactResp `json:"artifacts,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

func newTurnResp(t model.Turn) turnResp {
	resp := turnResp{
		Role:          string(t.Role),
		Content:       t.Content,
		CorrelationID: t.CorrelationID,
		CreatedAt:     t.CreatedAt,
	}
	for _, a := range t.Artifacts {
		resp.Artifacts = append(resp.Artifacts, artifactResp{
			Path:      a.Path,
			Label:     a.Label,
			Inventory: a.Inventory,
		})
	}
	return resp
}

func newTurnResps(turns []model.Turn) []turnResp {
	out := make([]turnResp, len(turns))
	for i, t := range turns {
		out[i] = newTurnResp(t)
	}
	return out
}

type detailRefResp struct {
	Inventory string `json:"inventory"`
	Path      string `json:"path"`
}

type sessionResp struct {
	ID     string         `json:"id"`
	Turns  []turnResp     `json:"turns"`
	Detail *detailRefResp `json:"detail,omitempty"`
}

func (h *handler) newSessionResp(out chat.SessionOutput) sessionResp {
	resp := sessionResp{ID: out.ID, Turns: newTurnResps(out.Turns)}
	if out.Detail != nil {
		resp.Detail = &detailRefResp{Inventory: out.Detail.Inventory, Path: out.Detail.Path}
	}
	return resp
}

type sendMessageResp struct {
	Reply turnResp   `json:"reply"`
	Turns []turnResp `json:"turns"`
}

func (h *handler) newSendMessageResp(out chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		Reply: newTurnResp(out.Reply),
		Turns: newTurnResps(out.NewTurns),
	}
}

type fieldResp struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type detailResp struct {
	Inventory string      `json:"inventory"`
	Path      string      `json:"path"`
	Fields    []fieldResp `json:"fields"`
}

func (h *handler) newDetailResp(out chat.DetailOutput) detailResp {
	fields := make([]fieldResp, len(out.Record.Fields))
	for i, f := range out.Record.Fields {
		fields[i] = fieldResp{Label: f.Label, Value: f.Value}
	}
	return detailResp{
		Inventory: out.Detail.Inventory,
		Path:      out.Detail.Path,
		Fields:    fields,
	}
}
