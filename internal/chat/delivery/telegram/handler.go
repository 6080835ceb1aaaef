package telegram

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"soroia/internal/chat"
	"soroia/internal/model"
	"soroia/internal/session"
	pkgResponse "soroia/pkg/response"
	pkgTelegram "soroia/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and answers the message in a background goroutine,
// since a turn spans several model calls.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func sessionID(chatID int64) string {
	return sessionPrefix + strconv.FormatInt(chatID, 10)
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Query())
	if text == "" {
		return nil
	}
	chatID := msg.Chat.ID

	switch text {
	case commandStart:
		return h.bot.SendMessage(chatID, session.Greeting)
	case commandHelp:
		return h.bot.SendMessage(chatID, replyHelp)
	case commandReset:
		h.uc.ResetSession(ctx, sessionID(chatID))
		return h.bot.SendMessage(chatID, replyReset+"\n\n"+session.Greeting)
	}

	out, err := h.uc.SendMessage(ctx, chat.SendMessageInput{
		SessionID:       sessionID(chatID),
		Message:         text,
		CreateIfMissing: true,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: SendMessage failed: %v", err)
		if errors.Is(err, session.ErrSessionBusy) {
			return h.bot.SendMessage(chatID, replyBusy)
		}
		return h.bot.SendMessage(chatID, replyFailed)
	}

	for _, t := range out.NewTurns {
		if t.Role == model.RoleSystem {
			if err := h.bot.SendMessage(chatID, t.Content); err != nil {
				h.l.Warnf(ctx, "telegram handler: failed to send debug turn: %v", err)
			}
		}
	}

	if err := h.bot.SendMessage(chatID, out.Reply.Content); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}

	return h.sendArtifacts(ctx, chatID, out.Reply.Artifacts)
}

// sendArtifacts uploads up to maxPhotos images captioned with their inventory
// number. Artifacts without a loadable image are listed in one text message.
func (h *handler) sendArtifacts(ctx context.Context, chatID int64, artifacts []model.Artifact) error {
	if len(artifacts) == 0 {
		return nil
	}

	var unsent []string
	for i, a := range artifacts {
		if h.images == nil || i >= maxPhotos {
			unsent = append(unsent, a.Label)
			continue
		}
		data, err := h.images.Load(ctx, a.Path)
		if err == nil {
			err = h.bot.SendPhoto(chatID, path.Base(a.Path), data, fmt.Sprintf(inventoryCaption, a.Label))
		}
		if err != nil {
			h.l.Warnf(ctx, "telegram handler: failed to send image %s: %v", a.Path, err)
			unsent = append(unsent, a.Label)
		}
	}

	if len(unsent) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(artifactsHeader)
	for _, label := range unsent {
		sb.WriteString("\n• ")
		sb.WriteString(label)
	}
	return h.bot.SendMessage(chatID, sb.String())
}
