package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusServiceUnavailable, "календарь недоступен")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusServiceUnavailable, body.Code)
	assert.Equal(t, "календарь недоступен", body.Message)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Mode string `json:"mode"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"mode":"IMMEDIATE"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "IMMEDIATE", dst.Mode)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	require.Error(t, DecodeJSON(r, &dst))
}
