package security

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	tokens map[string]*model.User
	err    error
	calls  []string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*model.User, error) {
	s.calls = append(s.calls, token)
	if s.err != nil {
		return nil, s.err
	}
	if user, ok := s.tokens[token]; ok {
		return user, nil
	}
	return nil, apperror.Unauthorized(errors.New("token invalid"))
}

func protectedHandler(t *testing.T, reached *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		user, err := GetUserFromContext(r.Context())
		require.NoError(t, err)
		_, _ = w.Write([]byte(user.UUID))
	})
}

func TestJWTMiddleware(t *testing.T) {
	alice := &model.User{UUID: "u-alice", Username: "alice"}

	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		authErr    error
		wantStatus int
		wantReach  bool
		wantToken  string
	}{
		{
			name:       "bearer header",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") },
			wantStatus: http.StatusOK,
			wantReach:  true,
			wantToken:  "good",
		},
		{
			name: "cookie wins over header",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "good"})
				r.Header.Set("Authorization", "Bearer bad")
			},
			wantStatus: http.StatusOK,
			wantReach:  true,
			wantToken:  "good",
		},
		{
			name:       "missing token",
			prepare:    func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer scheme",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Basic Zm9vOmJhcg==") },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") },
			wantStatus: http.StatusUnauthorized,
			wantToken:  "bad",
		},
		{
			name:       "store failure",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") },
			authErr:    apperror.InternalError("db down", errors.New("dial tcp")),
			wantStatus: http.StatusInternalServerError,
			wantToken:  "good",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &stubAuthenticator{tokens: map[string]*model.User{"good": alice}, err: tt.authErr}
			reached := false

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			JWTMiddleware(auth)(protectedHandler(t, &reached)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantReach, reached)
			if tt.wantToken != "" {
				assert.Equal(t, []string{tt.wantToken}, auth.calls)
			} else {
				assert.Empty(t, auth.calls)
			}

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, alice.UUID, rec.Body.String())
				return
			}

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "unauthorized request", body["message"])
			}
		})
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	user, err := GetUserFromContext(context.Background())
	assert.Nil(t, user)
	assert.True(t, apperror.IsKind(err, apperror.AuthenticationFailed))
}
