package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func mustHash(t *testing.T, key string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash key: %v", err)
	}
	return string(hash)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestBasicAuthAcceptsValidCredentials(t *testing.T) {
	guarded := BasicAuth("channel-1", mustHash(t, "secret"))(okHandler())

	request := httptest.NewRequest(http.MethodGet, "/contas", nil)
	request.SetBasicAuth("channel-1", "secret")
	recorder := httptest.NewRecorder()

	guarded.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
}

func TestBasicAuthRejectsBadCredentials(t *testing.T) {
	guarded := BasicAuth("channel-1", mustHash(t, "secret"))(okHandler())

	cases := []struct {
		name string
		id   string
		key  string
	}{
		{"wrong key", "channel-1", "guess"},
		{"wrong channel", "channel-2", "secret"},
		{"both wrong", "channel-2", "guess"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/contas", nil)
			request.SetBasicAuth(tc.id, tc.key)
			recorder := httptest.NewRecorder()

			guarded.ServeHTTP(recorder, request)

			if recorder.Code != http.StatusUnauthorized {
				t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
			}
		})
	}
}

func TestBasicAuthRejectsMissingHeader(t *testing.T) {
	guarded := BasicAuth("channel-1", mustHash(t, "secret"))(okHandler())

	request := httptest.NewRequest(http.MethodGet, "/contas", nil)
	recorder := httptest.NewRecorder()

	guarded.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestBasicAuthFailsClosedWithoutConfiguration(t *testing.T) {
	guarded := BasicAuth("", "")(okHandler())

	request := httptest.NewRequest(http.MethodGet, "/contas", nil)
	request.SetBasicAuth("channel-1", "secret")
	recorder := httptest.NewRecorder()

	guarded.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}
