package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

// TelegramNotifier posts booking alerts to a Telegram chat via the
// Bot API sendPhoto method.
type TelegramNotifier struct {
	apiBase  string
	botToken string
	chatID   string
	client   *http.Client
	log      *zap.Logger
}

func NewTelegram(config utils.TelegramConfig, log *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		apiBase:  config.APIBase,
		botToken: config.BotToken,
		chatID:   config.ChatID,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log.With(zap.String("notifier", "telegram")),
	}
}

type sendPhotoRequest struct {
	ChatID    string `json:"chat_id"`
	Photo     string `json:"photo"`
	Caption   string `json:"caption"`
	ParseMode string `json:"parse_mode"`
}

func (t *TelegramNotifier) Notify(ctx context.Context, photoURL, message string) error {
	url := fmt.Sprintf("%s/bot%s/sendPhoto", t.apiBase, t.botToken)

	payload := sendPhotoRequest{
		ChatID:    t.chatID,
		Photo:     photoURL,
		Caption:   message,
		ParseMode: "Markdown",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sendPhoto payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sendPhoto request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		t.log.Warn("Telegram API rejected notification",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	return nil
}
