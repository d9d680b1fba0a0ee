package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io/fs"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqguard/pkg/i18n"
	"github.com/dmitrymomot/reqguard/pkg/requestid"
	"github.com/dmitrymomot/reqguard/pkg/validation"
)

// 1x1 transparent PNG
const pngBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dir, err := fs.Sub(translationFiles, "translations")
	require.NoError(t, err)
	tr, err := i18n.New(context.Background(), i18n.NewFSAdapter(dir, "."))
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "it"}, tr.Languages())

	cfg := Config{DefaultLang: "en", ValidationStatus: http.StatusUnprocessableEntity, MaxBodySize: 1 << 20}
	return newRouter(cfg, tr, slog.New(slog.DiscardHandler))
}

func errorDetails(t *testing.T, rec *httptest.ResponseRecorder) validation.Errors {
	t.Helper()
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	var body validation.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error.Details
}

func TestRouter(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	do := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("health probes", func(t *testing.T) {
		t.Parallel()
		rec := do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, "ALIVE", rec.Body.String())
		rec = do(httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("request id is echoed", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set(requestid.Header, "abc-123")
		rec := do(req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "abc-123", rec.Header().Get(requestid.Header))
	})

	t.Run("query", func(t *testing.T) {
		t.Parallel()
		rec := do(httptest.NewRequest(http.MethodGet, "/users?username=davide+pastore&age=200", nil))
		assert.Equal(t, validation.Errors{
			"username": {
				"alnum":        `"davide pastore" must contain only letters (a-z) and digits (0-9)`,
				"noWhitespace": `"davide pastore" must not contain whitespace`,
			},
			"age": {"between": `"200" must be between 1 and 120`},
		}, errorDetails(t, rec))
	})

	t.Run("query in italian", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/users?age=200", nil)
		req.Header.Set("Accept-Language", "it-IT,it;q=0.9,en;q=0.5")
		rec := do(req)
		assert.Equal(t, validation.Errors{
			"age": {"between": `"200" deve essere compreso tra 1 e 120`},
		}, errorDetails(t, rec))
	})

	t.Run("json body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{
			"username": "davidepastore",
			"age": 33,
			"email": {"address": "not-an-email"},
			"tags": ["go", ""]
		}`))
		req.Header.Set("Content-Type", "application/json")
		rec := do(req)
		assert.Equal(t, validation.Errors{
			"email.address": {"email": `"not-an-email" must be valid email`},
			"tags":          {"length": `"" must have a length between 1 and 16`},
		}, errorDetails(t, rec))
	})

	t.Run("xml body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`<user>
			<username>davidepastore</username>
			<age>33</age>
			<email><address>davide@example.com</address></email>
		</user>`))
		req.Header.Set("Content-Type", "application/xml")
		rec := do(req)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("route param", func(t *testing.T) {
		t.Parallel()
		rec := do(httptest.NewRequest(http.MethodGet, "/users/42", nil))
		assert.Equal(t, validation.Errors{
			"id": {"uuid": `"42" must be a valid UUID`},
		}, errorDetails(t, rec))

		rec = do(httptest.NewRequest(http.MethodGet, "/users/6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("avatar upload", func(t *testing.T) {
		t.Parallel()
		png, err := base64.StdEncoding.DecodeString(pngBase64)
		require.NoError(t, err)

		var buf bytes.Buffer
		mp := multipart.NewWriter(&buf)
		fw, err := mp.CreateFormFile("avatar", "me.png")
		require.NoError(t, err)
		_, err = fw.Write(png)
		require.NoError(t, err)
		require.NoError(t, mp.Close())

		req := httptest.NewRequest(http.MethodPost, "/users/1/avatar", &buf)
		req.Header.Set("Content-Type", mp.FormDataContentType())
		rec := do(req)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("notification", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(`{"message":{"notification":1}}`))
		req.Header.Set("Content-Type", "application/json")
		rec := do(req)
		assert.Equal(t, validation.Errors{
			"message.notification.title": {
				"notificationTitle": "notificationTitle must have a length greater than or equal to 1",
			},
			"message.notification.body": {
				"notificationBody": "notificationBody must have a length greater than or equal to 1",
			},
		}, errorDetails(t, rec))
	})

	t.Run("pass through search", func(t *testing.T) {
		t.Parallel()
		rec := do(httptest.NewRequest(http.MethodGet, "/search", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			HasErrors bool              `json:"has_errors"`
			Errors    validation.Errors `json:"errors"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.True(t, body.HasErrors)
		assert.Equal(t, validation.Errors{"q": {"notEmpty": "`NULL` must not be empty"}}, body.Errors)
	})
}
