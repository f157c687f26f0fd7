package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// executeGuard runs the auth middleware around next and returns the recorder.
func executeGuard(h *Handler, req *http.Request, next http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

// nextSpy records whether the downstream handler ran and which account ID it
// saw in the request context.
type nextSpy struct {
	called    bool
	accountID string
	idPresent bool
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.accountID, s.idPresent = utils.GetAccountIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, tokenSvc := newTestHandler(t, ctrl)
	tokenSvc.EXPECT().ParseToken(gomock.Any(), "signed-token").
		Return(models.Token{AccountID: "account-1"}, nil)

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "signed-token"})

	executeGuard(h, req, spy.handler())

	require.True(t, spy.called, "valid session must reach the next handler")
	assert.True(t, spy.idPresent)
	assert.Equal(t, "account-1", spy.accountID)
}

func TestAuth_BearerHeaderFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, tokenSvc := newTestHandler(t, ctrl)
	tokenSvc.EXPECT().ParseToken(gomock.Any(), "signed-token").
		Return(models.Token{AccountID: "account-1"}, nil)

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer signed-token")

	executeGuard(h, req, spy.handler())

	require.True(t, spy.called, "bearer header must work for cookie-less clients")
	assert.Equal(t, "account-1", spy.accountID)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		prepare    func(req *http.Request)
		parseCalls int
	}{
		{
			name:    "no token at all",
			prepare: func(req *http.Request) {},
		},
		{
			name: "empty cookie value",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: ""})
			},
		},
		{
			name: "malformed authorization header",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer")
			},
		},
		{
			name: "rejected token",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "forged"})
			},
			parseCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, _, tokenSvc := newTestHandler(t, ctrl)
			if tt.parseCalls > 0 {
				tokenSvc.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
					Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).
					Times(tt.parseCalls)
			}

			spy := &nextSpy{}
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.prepare(req)

			rr := executeGuard(h, req, spy.handler())

			assert.False(t, spy.called, "rejected requests must never reach the next handler")

			// every rejection is HTTP 200 with the same envelope: the guard
			// never reveals which check failed
			require.Equal(t, http.StatusOK, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.False(t, resp.Success)
			assert.Equal(t, authFailureMessage, resp.Message)
		})
	}
}

func TestAuth_CookieTakesPrecedenceOverHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, tokenSvc := newTestHandler(t, ctrl)
	tokenSvc.EXPECT().ParseToken(gomock.Any(), "cookie-token").
		Return(models.Token{AccountID: "account-1"}, nil)

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")

	executeGuard(h, req, spy.handler())

	require.True(t, spy.called)
}
