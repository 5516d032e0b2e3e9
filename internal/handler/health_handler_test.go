package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Healthz(t *testing.T) {
	tests := []struct {
		name         string
		pingErr      error
		expectedCode int
		expectedBody string
		expectedLog  string
	}{
		{name: "store up", expectedCode: http.StatusOK, expectedBody: `{"status":"ok"}`},
		{
			name:         "store down",
			pingErr:      errors.New("refused"),
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"status":"unavailable"}`,
			expectedLog:  `"error":"refused"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewHealthHandler(PingerFunc(func(context.Context) error { return tt.pingErr }), zerolog.New(&buf))

			rec := serve(newEcho(), h.Healthz, httptest.NewRequest(http.MethodGet, "/healthz", nil), nil, nil)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			if tt.expectedLog == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), `"level":"error"`)
				assert.Contains(t, buf.String(), tt.expectedLog)
			}
		})
	}
}
