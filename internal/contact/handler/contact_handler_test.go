package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsweb/lsweb-api/internal/contact/domain"
	"github.com/lsweb/lsweb-api/internal/contact/dto"
	"github.com/lsweb/lsweb-api/internal/contact/handler"
	"github.com/lsweb/lsweb-api/internal/contact/service"
	"github.com/lsweb/lsweb-api/internal/mocks"
)

func newTestApp(t *testing.T, mockStore *mocks.MockContactStore, mockNotifier *mocks.MockNotifier) *fiber.App {
	t.Helper()

	intakeService := service.NewIntakeService(mockStore, mockNotifier)
	contactHandler := handler.NewContactHandler(intakeService)

	app := fiber.New()
	handler.RegisterRoutes(app, contactHandler)
	return app
}

func jsonRequest(method, target string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := newTestApp(t, mocks.NewMockContactStore(ctrl), mocks.NewMockNotifier(ctrl))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "LS WEB API - Ready", body["message"])
}

func TestCreateContactRequest(t *testing.T) {
	input := dto.ContactRequestCreate{
		Name:        "Ana Gomez",
		Email:       "ana@x.com",
		ProjectType: "landing-page",
		Description: "Necesito una landing page para mi negocio",
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockContactStore(ctrl)
		mockNotifier := mocks.NewMockNotifier(ctrl)
		app := newTestApp(t, mockStore, mockNotifier)

		mockStore.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/contact-request", input))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.ContactRequestResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, "Solicitud enviada exitosamente. Te contactaremos pronto.", body.Message)
		assert.NotEmpty(t, body.ID)
	})

	t.Run("validation failure is a 400 naming fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := newTestApp(t, mocks.NewMockContactStore(ctrl), mocks.NewMockNotifier(ctrl))

		bad := input
		bad.Description = "corto"

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/contact-request", bad))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body struct {
			Success bool     `json:"success"`
			Fields  []string `json:"fields"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Contains(t, body.Fields, "Description")
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := newTestApp(t, mocks.NewMockContactStore(ctrl), mocks.NewMockNotifier(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/api/contact-request", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Datos de entrada inválidos")
	})

	t.Run("storage failure is a generic 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockContactStore(ctrl)
		mockNotifier := mocks.NewMockNotifier(ctrl)
		app := newTestApp(t, mockStore, mockNotifier)

		mockStore.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("dial tcp 10.0.0.5:5432: connection refused"))

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/contact-request", input))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		// The client must never see the internal error text.
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Error interno del servidor")
		assert.NotContains(t, string(raw), "connection refused")
	})
}

func TestListContactRequests(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockContactStore(ctrl)
		app := newTestApp(t, mockStore, mocks.NewMockNotifier(ctrl))

		now := time.Now().UTC().Truncate(time.Second)
		mockStore.EXPECT().List(gomock.Any(), 100).Return([]domain.ContactRequest{
			{ID: "r-2", Name: "Luis", Email: "luis@x.com", ProjectType: "blog",
				Description: "Un blog personal con portfolio", CreatedAt: now, Status: domain.StatusPending},
			{ID: "r-1", Name: "Ana", Email: "ana@x.com", ProjectType: "landing-page",
				Description: "Una landing page sencilla", CreatedAt: now.Add(-time.Hour), Status: domain.StatusPending},
		}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/contact-requests", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body []dto.ContactRequestOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body, 2)
		assert.Equal(t, "r-2", body[0].ID)
		assert.Equal(t, "pending", body[0].Status)
		assert.Equal(t, "blog", body[0].ProjectType)
		assert.Equal(t, "r-1", body[1].ID)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockContactStore(ctrl)
		app := newTestApp(t, mockStore, mocks.NewMockNotifier(ctrl))

		mockStore.EXPECT().List(gomock.Any(), 100).Return(nil, errors.New("connection refused"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/contact-requests", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}
