package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// webhookUpdates limits delivery to plain messages; edits and callbacks are not handled.
var webhookUpdates = []string{"message"}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(webhookURL string) error {
	url := fmt.Sprintf("%s/setWebhook", b.apiURL)
	payload := SetWebhookRequest{URL: webhookURL, AllowedUpdates: webhookUpdates}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook request: %w", err)
	}
	resp, err := b.httpClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode webhook response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed (%d): %s", apiResp.ErrorCode, apiResp.Description)
	}
	return nil
}

// MaxMessageLength is the Bot API limit for a single text message.
const MaxMessageLength = 4096

// MaxCaptionLength is the Bot API limit for a photo caption.
const MaxCaptionLength = 1024

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.SendMessageWithMode(chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	url := fmt.Sprintf("%s/sendMessage", b.apiURL)
	payload := SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	resp, err := b.httpClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram sendMessage API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}

// SendPhoto uploads an image with an optional caption to a Telegram chat.
func (b *Bot) SendPhoto(chatID int64, filename string, data []byte, caption string) error {
	url := fmt.Sprintf("%s/sendPhoto", b.apiURL)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("chat_id", strconv.FormatInt(chatID, 10)); err != nil {
		return fmt.Errorf("failed to write chat_id: %w", err)
	}
	if caption != "" {
		if len([]rune(caption)) > MaxCaptionLength {
			caption = string([]rune(caption)[:MaxCaptionLength])
		}
		if err := w.WriteField("caption", caption); err != nil {
			return fmt.Errorf("failed to write caption: %w", err)
		}
	}
	part, err := w.CreateFormFile("photo", filename)
	if err != nil {
		return fmt.Errorf("failed to create photo part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("failed to write photo: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close multipart body: %w", err)
	}

	resp, err := b.httpClient.Post(url, w.FormDataContentType(), &body)
	if err != nil {
		return fmt.Errorf("failed to send photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram sendPhoto API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
