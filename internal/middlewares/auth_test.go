package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-apartment-listings/internal/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").Return(nil, jwt.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "RefreshTokenRejected",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("refresh", nil)
				m.EXPECT().GetClaims(gomock.Any(), "refresh").
					Return(&jwt.Claims{UserID: userID, Type: jwt.TokenTypeRefresh}, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{UserID: userID, Role: "tenant", Type: jwt.TokenTypeAccess}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				claims := ClaimsFromContext(r.Context())
				assert.NotNil(t, claims)
				assert.Equal(t, userID, claims.UserID)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Invalid or missing token"}`, rr.Body.String())
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	t.Run("anonymous passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := NewMockTokener(ctrl)
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrMissingAuthHeader)

		handler := OptionalAuthMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Nil(t, ClaimsFromContext(r.Context()))
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("valid token attaches claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := NewMockTokener(ctrl)
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		m.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: userID, Type: jwt.TokenTypeAccess}, nil)

		var got *jwt.Claims
		handler := OptionalAuthMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = ClaimsFromContext(r.Context())
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		if assert.NotNil(t, got) {
			assert.Equal(t, userID, got.UserID)
		}
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		claims         *jwt.Claims
		expectedStatus int
		expectedBody   string
	}{
		{"no claims", nil, http.StatusUnauthorized, `{"error":"Invalid or missing token"}`},
		{"wrong role", &jwt.Claims{Role: "tenant"}, http.StatusForbidden, `{"error":"Only landlords can perform this action"}`},
		{"matching role", &jwt.Claims{Role: "landlord"}, http.StatusNoContent, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})
			handler := RequireRole("landlord", "Only landlords can perform this action")(next)

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
