package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/middleware"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/usecases/slackbot"
)

type SlackEventsHandler struct {
	signingSecret   string
	slackbotUseCase *slackbot.SlackbotUseCase
	alertMiddleware *middleware.ErrorAlertMiddleware
}

func NewSlackEventsHandler(
	signingSecret string,
	slackbotUseCase *slackbot.SlackbotUseCase,
	alertMiddleware *middleware.ErrorAlertMiddleware,
) *SlackEventsHandler {
	return &SlackEventsHandler{
		signingSecret:   signingSecret,
		slackbotUseCase: slackbotUseCase,
		alertMiddleware: alertMiddleware,
	}
}

// verifySlackSignature verifies the authenticity of a Slack webhook request
func (h *SlackEventsHandler) verifySlackSignature(r *http.Request, body []byte) error {
	// Extract headers
	timestamp := r.Header.Get("X-Slack-Request-Timestamp")
	signature := r.Header.Get("X-Slack-Signature")

	if timestamp == "" || signature == "" {
		return fmt.Errorf("missing required headers")
	}

	// Verify timestamp freshness (within 5 minutes)
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp format: %v", err)
	}

	if time.Now().Unix()-ts > 300 { // 5 minutes
		return fmt.Errorf("request timestamp too old")
	}

	// Create signature base string: v0:timestamp:body
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, string(body))

	// Compute HMAC-SHA256
	mac := hmac.New(sha256.New, []byte(h.signingSecret))
	mac.Write([]byte(baseString))
	expectedSignature := "v0=" + hex.EncodeToString(mac.Sum(nil))

	// Secure comparison
	if !hmac.Equal([]byte(expectedSignature), []byte(signature)) {
		return fmt.Errorf("signature verification failed")
	}

	return nil
}

func (h *SlackEventsHandler) HandleSlackEvent(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 Slack event received from %s", r.RemoteAddr)

	// Read raw body for signature verification
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	// Verify Slack signature
	if err := h.verifySlackSignature(r, bodyBytes); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	log.Printf("✅ Slack signature verified successfully")

	// Parse JSON from body bytes
	var body map[string]any
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		log.Printf("❌ Failed to parse JSON body: %v", err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}

	if body["type"] == "url_verification" {
		log.Printf("🔐 Slack URL verification challenge received")
		challenge, ok := body["challenge"].(string)
		if !ok {
			log.Printf("❌ Challenge not found in verification request")
			http.Error(w, "challenge not found", http.StatusBadRequest)
			return
		}
		log.Printf("✅ Responding to Slack URL verification challenge")
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte(challenge)); err != nil {
			log.Printf("❌ Failed to write challenge response: %v", err)
		}
		return
	}

	if body["type"] != "event_callback" {
		log.Printf("📋 Non-event callback received: %s", body["type"])
		w.WriteHeader(http.StatusOK)
		return
	}

	log.Printf("📞 Event callback received from Slack")

	event, ok := body["event"].(map[string]any)
	if !ok {
		log.Printf("❌ Event payload not found in callback")
		http.Error(w, "event not found", http.StatusBadRequest)
		return
	}

	eventType, _ := event["type"].(string)

	switch eventType {
	case "app_mention":
		mentionEvent, err := parseAppMentionEvent(event)
		if err != nil {
			log.Printf("❌ Failed to parse app mention event: %v", err)
			http.Error(w, "malformed event", http.StatusBadRequest)
			return
		}

		// Acknowledge immediately; Slack retries events that stay unanswered.
		// Processing happens asynchronously with panic alerting around it.
		go h.alertMiddleware.WrapEventTask("app_mention", func() error {
			return h.slackbotUseCase.ProcessAppMentionEvent(context.Background(), mentionEvent)
		})()
	default:
		log.Printf("⏭️ Ignoring unsupported event type: %s", eventType)
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackEventsHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering Slack webhook endpoints")

	router.HandleFunc("/slack/events", h.HandleSlackEvent).Methods("POST")
	log.Printf("✅ POST /slack/events endpoint registered")

	log.Printf("✅ All Slack webhook endpoints registered successfully")
}

// parseAppMentionEvent maps the raw event payload onto the typed mention
// event, including the rich text blocks the tokenizer works from
func parseAppMentionEvent(event map[string]any) (models.SlackMentionEvent, error) {
	channel, ok := event["channel"].(string)
	if !ok || channel == "" {
		return models.SlackMentionEvent{}, fmt.Errorf("channel not found in event")
	}
	user, ok := event["user"].(string)
	if !ok || user == "" {
		return models.SlackMentionEvent{}, fmt.Errorf("user not found in event")
	}
	timestamp, ok := event["ts"].(string)
	if !ok || timestamp == "" {
		return models.SlackMentionEvent{}, fmt.Errorf("ts not found in event")
	}

	text, _ := event["text"].(string)
	threadTS, _ := event["thread_ts"].(string)

	mentionEvent := models.SlackMentionEvent{
		Channel:  channel,
		User:     user,
		Text:     text,
		TS:       timestamp,
		ThreadTS: threadTS,
	}

	// Blocks arrive as loosely typed JSON; round-trip them through the typed
	// rich text model. Absent or unparseable blocks leave the slice empty and
	// the event gets ignored downstream rather than rejected here.
	if rawBlocks, ok := event["blocks"]; ok {
		blockBytes, err := json.Marshal(rawBlocks)
		if err != nil {
			return models.SlackMentionEvent{}, fmt.Errorf("failed to re-encode event blocks: %w", err)
		}
		if err := json.Unmarshal(blockBytes, &mentionEvent.Blocks); err != nil {
			return models.SlackMentionEvent{}, fmt.Errorf("failed to decode event blocks: %w", err)
		}
	}

	return mentionEvent, nil
}
