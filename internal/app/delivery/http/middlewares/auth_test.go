package middlewares

import (
	"carebridge-service/internal/app/config"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testMiddlewares() *Middlewares {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 1
	return NewMiddlewares(zap.NewNop(), internalConfig)
}

func TestRequestID(t *testing.T) {
	m := testMiddlewares()

	t.Run("generates an ID when the client sends none", func(t *testing.T) {
		var seen string
		handler := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.ContextRequestID).(string)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("honors a client-supplied ID", func(t *testing.T) {
		var seen string
		handler := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.ContextRequestID).(string)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "client-id-1", seen)
	})
}

func TestSessionAuth(t *testing.T) {
	m := testMiddlewares()

	newRouter := func() *chi.Mux {
		router := chi.NewRouter()
		router.With(m.SessionAuth).Post("/sessions/{sessionID}/migrate", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		return router
	}

	t.Run("rejects a request without a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions/sess-1/migrate", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/sessions/sess-1/migrate", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token issued for another session", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-2", "test-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/sessions/sess-1/migrate", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepts a matching session token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", "test-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/sessions/sess-1/migrate", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
