package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// TelegramNotifier delivers analysis and scan reports over the Telegram
// Bot API and exposes the bot's command surface.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	Client   *http.Client
}

// Message is one outbound report. Scan reports carry ticker symbols that
// Telegram would otherwise expand into link previews, so they disable it.
type Message struct {
	Text           string
	DisablePreview bool
}

// BotCommand is one entry of the command menu registered with Telegram.
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// Commands returns the command menu this bot answers to. The scheduler's
// command routing and the registered menu must stay in sync.
func Commands() []BotCommand {
	return []BotCommand{
		{Command: "analyze", Description: "analyze the configured symbol"},
		{Command: "scan", Description: "run the basket scan"},
		{Command: "status", Description: "show bot status"},
	}
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (t *TelegramNotifier) api(method string) string {
	return fmt.Sprintf("https://api.telegram.org/bot%s/%s", t.BotToken, method)
}

// sendPayload builds the sendMessage body for a report.
func sendPayload(chatID string, msg Message) map[string]interface{} {
	return map[string]interface{}{
		"chat_id":                  chatID,
		"text":                     msg.Text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": msg.DisablePreview,
	}
}

// Send delivers one message to the configured chat.
func (t *TelegramNotifier) Send(msg Message) error {
	body, err := json.Marshal(sendPayload(t.ChatID, msg))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	resp, err := t.Client.Post(t.api("sendMessage"), "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// SendText delivers a plain report with default options.
func (t *TelegramNotifier) SendText(text string) error {
	return t.Send(Message{Text: text})
}

// SendWithRetry delivers a message with exponential backoff retry.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, msg Message, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if err := t.Send(msg); err != nil {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * time.Second
			log.Printf("[WARN] telegram send failed (attempt %d/%d): %v, retrying in %v", i+1, maxRetries+1, err, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}

// RegisterCommands publishes the command menu via setMyCommands so
// Telegram clients suggest /analyze, /scan and /status.
func (t *TelegramNotifier) RegisterCommands(ctx context.Context) error {
	body, err := json.Marshal(map[string]interface{}{"commands": Commands()})
	if err != nil {
		return fmt.Errorf("marshal commands: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", t.api("setMyCommands"), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("register commands: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
