package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"breadmap/internal/domain/service"
	mockusecase "breadmap/internal/mocks/usecase"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRecheckHandler(badgeUC usecase.BadgeUsecase) *RecheckHandler {
	return &RecheckHandler{
		verifyPushAuth: false,
		logger:         slog.Default(),
		badgeUC:        badgeUC,
	}
}

func pushRequest(t *testing.T, event *service.BadgeRecheckEvent) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(payload),
			"messageId": "1",
		},
		"subscription": "projects/test/subscriptions/badge-recheck",
	}
	body, err := json.Marshal(envelope)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestRecheckHandler_HandlePush_Success(t *testing.T) {
	userID := uuid.New()
	badgeUC := mockusecase.NewMockBadgeUsecase(t)
	badgeUC.EXPECT().
		Recheck(mock.Anything, userID).
		Return(&usecase.RecheckResult{Success: true, AwardedBadgesCount: 2}, nil)

	handler := newRecheckHandler(badgeUC)

	e := echo.New()
	req := pushRequest(t, &service.BadgeRecheckEvent{
		UserID:  userID.String(),
		Trigger: "review_created",
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecheckHandler_HandlePush_RetryableFailure(t *testing.T) {
	userID := uuid.New()
	badgeUC := mockusecase.NewMockBadgeUsecase(t)
	badgeUC.EXPECT().
		Recheck(mock.Anything, userID).
		Return(nil, errors.New("database unavailable"))

	handler := newRecheckHandler(badgeUC)

	e := echo.New()
	req := pushRequest(t, &service.BadgeRecheckEvent{UserID: userID.String()})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	assert.NoError(t, err)
	// 503 tells Pub/Sub to redeliver the message.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRecheckHandler_HandlePush_MalformedUserIDDropsMessage(t *testing.T) {
	badgeUC := mockusecase.NewMockBadgeUsecase(t)

	handler := newRecheckHandler(badgeUC)

	e := echo.New()
	req := pushRequest(t, &service.BadgeRecheckEvent{UserID: "not-a-uuid"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	assert.NoError(t, err)
	// A malformed ID never parses, 200 keeps Pub/Sub from retrying forever.
	assert.Equal(t, http.StatusOK, rec.Code)
	badgeUC.AssertNotCalled(t, "Recheck")
}

func TestRecheckHandler_HandlePush_InvalidBase64(t *testing.T) {
	badgeUC := mockusecase.NewMockBadgeUsecase(t)

	handler := newRecheckHandler(badgeUC)

	envelope := `{"message":{"data":"%%%not-base64%%%","messageId":"1"},"subscription":"s"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(envelope))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecheckHandler_HandlePush_RequestIDFromAttributes(t *testing.T) {
	userID := uuid.New()
	badgeUC := mockusecase.NewMockBadgeUsecase(t)
	badgeUC.EXPECT().
		Recheck(mock.Anything, userID).
		Return(&usecase.RecheckResult{Success: true}, nil)

	handler := newRecheckHandler(badgeUC)

	payload, err := json.Marshal(&service.BadgeRecheckEvent{UserID: userID.String()})
	assert.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(payload),
			"attributes": map[string]string{"request_id": "req-from-attrs"},
			"messageId":  "1",
		},
		"subscription": "s",
	}
	body, err := json.Marshal(envelope)
	assert.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = handler.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractRequestID_Priority(t *testing.T) {
	handler := newRecheckHandler(nil)

	pushMsg := &PubSubMessage{}
	pushMsg.Message.Attributes = map[string]string{"request_id": "from-attrs"}
	event := &service.BadgeRecheckEvent{RequestID: "from-event"}

	ctx := context.Background()

	// Attributes win over the event field.
	assert.Equal(t, "from-attrs", handler.extractRequestID(ctx, pushMsg, event))

	// Without attributes the event field is used.
	pushMsg.Message.Attributes = nil
	assert.Equal(t, "from-event", handler.extractRequestID(ctx, pushMsg, event))

	// With neither, a fresh UUID is generated.
	event.RequestID = ""
	generated := handler.extractRequestID(ctx, pushMsg, event)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
