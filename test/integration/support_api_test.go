package integration

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"support-helpline-be/internal/controller"
	"support-helpline-be/internal/dto"
	"support-helpline-be/internal/pkg/logger"
	"support-helpline-be/internal/pkg/serverutils"
	"support-helpline-be/internal/repository/memory"
	"support-helpline-be/internal/service"
	"support-helpline-be/pkg/kb"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// newTestApp builds the API against in-memory storage only, so these tests
// need no Redis, Postgres, NATS, or SMTP.
func newTestApp() *fiber.App {
	historyRepo := memory.NewHistoryRepository()
	supportService := service.NewSupportService(historyRepo, nil, nil, kb.Default(), logger.NewNopLogger())

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	api := app.Group("/api")
	controller.NewSupportController(supportService).RegisterRoutes(api)

	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/support/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var result map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("invalid JSON body %q: %v", raw, err)
	}
	return resp.StatusCode, result
}

func TestChatDirectAnswer(t *testing.T) {
	app := newTestApp()

	status, result := postChat(t, app, `{"sessionId": "it-1", "message": "How do I reset my password?"}`)

	assert.Equal(t, 200, status)
	assert.Equal(t, false, result["escalate"])
	assert.Contains(t, result["reply"], "Reset Password")

	// No ticket on a confident answer.
	_, hasTicket := result["ticketId"]
	assert.False(t, hasTicket)
}

func TestChatEscalation(t *testing.T) {
	app := newTestApp()

	status, result := postChat(t, app, `{"sessionId": "it-2", "message": "asdf qqq zzz"}`)

	assert.Equal(t, 200, status)
	assert.Equal(t, true, result["escalate"])
	assert.Contains(t, result["reply"], "not fully confident")

	ticketId, ok := result["ticketId"].(string)
	assert.True(t, ok, "escalated turn must carry a ticketId")
	assert.Regexp(t, regexp.MustCompile(`^HLP-\d{6}$`), ticketId)
}

func TestChatValidation(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		name string
		body string
	}{
		{"missing message", `{"sessionId": "it-3"}`},
		{"missing sessionId", `{"message": "hello"}`},
		{"empty strings", `{"sessionId": "", "message": ""}`},
		{"malformed JSON", `{"sessionId": `},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/support/v1/chat", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			assert.JSONEq(t, `{"error": "sessionId and message are required"}`, string(raw))
		})
	}
}

func TestChatHistoryRoundTrip(t *testing.T) {
	app := newTestApp()

	status, result := postChat(t, app, `{"sessionId": "it-4", "message": "How do I cancel my subscription?"}`)
	assert.Equal(t, 200, status)

	req := httptest.NewRequest("GET", "/api/support/v1/history/it-4", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var envelope serverutils.BaseResponse[[]dto.SupportTurnResponse]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)

	if assert.Len(t, envelope.Data, 2) {
		assert.Equal(t, "user", envelope.Data[0].Role)
		assert.Equal(t, "How do I cancel my subscription?", envelope.Data[0].Content)
		assert.Equal(t, "assistant", envelope.Data[1].Role)
		assert.Equal(t, result["reply"], envelope.Data[1].Content)
	}
}

func TestChatFollowUpInheritsTopic(t *testing.T) {
	app := newTestApp()

	status, _ := postChat(t, app, `{"sessionId": "it-5", "message": "How do I reset my password?"}`)
	assert.Equal(t, 200, status)

	// A vague follow-up in the same session stays on topic.
	status, result := postChat(t, app, `{"sessionId": "it-5", "message": "how long does it take"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, false, result["escalate"])
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/support/v1/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
