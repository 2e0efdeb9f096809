package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsweb/lsweb-api/internal/mocks"
)

// TestRegisterRoutes verifies that all auth routes are mounted correctly.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockCredentialStore(ctrl)
	mockStore.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(adminUser(t), nil).AnyTimes()

	app := newTestApp(t, mockStore)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/login"},
		{http.MethodPost, "/api/init-admin"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
