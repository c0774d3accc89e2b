package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/services"
)

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)
		mockSvc.EXPECT().Profile(gomock.Any(), userID).Return(&models.UserDB{UserID: userID, Username: "john"}, nil)

		rr := httptest.NewRecorder()
		NewProfileHandler(mockSvc).ServeHTTP(rr, withCaller(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), userID, models.RoleTenant))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "john", decodeMap(t, rr)["username"])
	})

	t.Run("deleted user", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)
		mockSvc.EXPECT().Profile(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)

		rr := httptest.NewRecorder()
		NewProfileHandler(mockSvc).ServeHTTP(rr, withCaller(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), userID, models.RoleTenant))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, rr.Body.String())
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		mockErr       error
		expectedCode  int
		expectedError string
	}{
		{name: "success", expectedCode: http.StatusOK},
		{name: "username taken", mockErr: services.ErrUsernameExists, expectedCode: http.StatusBadRequest, expectedError: "Username already exists"},
		{name: "email taken", mockErr: services.ErrEmailExists, expectedCode: http.StatusBadRequest, expectedError: "Email already exists"},
		{name: "user gone", mockErr: services.ErrUserNotFound, expectedCode: http.StatusNotFound, expectedError: "User not found"},
		{name: "password too long", mockErr: services.ErrPasswordTooLong, expectedCode: http.StatusBadRequest, expectedError: "Password must be at most 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileUpdater(ctrl)
			mockSvc.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).
				DoAndReturn(func(_ any, _ uuid.UUID, update models.ProfileUpdate) (*models.UserDB, error) {
					assert.Equal(t, "johnny", *update.Username)
					assert.Nil(t, update.Email)
					if tt.mockErr != nil {
						return nil, tt.mockErr
					}
					return &models.UserDB{UserID: userID, Username: *update.Username}, nil
				})

			req := withCaller(httptest.NewRequest(http.MethodPut, "/api/users/me", bytes.NewBufferString(`{"username":"johnny"}`)), userID, models.RoleTenant)
			rr := httptest.NewRecorder()
			NewUpdateProfileHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			body := decodeMap(t, rr)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}
			assert.Equal(t, "Profile updated successfully", body["message"])
			assert.Equal(t, "johnny", body["user"].(map[string]any)["username"])
		})
	}
}

func TestUpdateProfileHandler_EmptyValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	for _, body := range []string{`{"username":""}`, `{"email":""}`, `{"password":""}`} {
		t.Run(body, func(t *testing.T) {
			mockSvc := NewMockProfileUpdater(ctrl)

			req := withCaller(httptest.NewRequest(http.MethodPut, "/api/users/me", bytes.NewBufferString(body)), userID, models.RoleTenant)
			rr := httptest.NewRecorder()
			NewUpdateProfileHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"Username, email and password cannot be empty"}`, rr.Body.String())
		})
	}

	t.Run("null means unchanged", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)
		mockSvc.EXPECT().UpdateProfile(gomock.Any(), userID, models.ProfileUpdate{}).
			Return(&models.UserDB{UserID: userID, Username: "john"}, nil)

		req := withCaller(httptest.NewRequest(http.MethodPut, "/api/users/me", bytes.NewBufferString(`{"username":null}`)), userID, models.RoleTenant)
		rr := httptest.NewRecorder()
		NewUpdateProfileHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestMyListingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	mockSvc := NewMockOwnerListingLister(ctrl)
	mockSvc.EXPECT().ListByOwner(gomock.Any(), ownerID, models.NewPage(1, 10)).
		Return(models.NewPaginated([]models.Listing{{ListingDB: models.ListingDB{IsPublished: false}}}, 1, models.NewPage(1, 10)), nil)

	rr := httptest.NewRecorder()
	NewMyListingsHandler(mockSvc).ServeHTTP(rr, withCaller(httptest.NewRequest(http.MethodGet, "/api/users/me/listings", nil), ownerID, models.RoleLandlord))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeMap(t, rr)["items"], 1)
}

func TestMyReviewsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockUserReviewLister(ctrl)
	mockSvc.EXPECT().ListByUser(gomock.Any(), userID, models.NewPage(3, 10)).
		Return(models.NewPaginated[models.ReviewWithAuthor](nil, 2, models.NewPage(3, 10)), nil)

	rr := httptest.NewRecorder()
	NewMyReviewsHandler(mockSvc).ServeHTTP(rr, withCaller(httptest.NewRequest(http.MethodGet, "/api/users/me/reviews?page=3", nil), userID, models.RoleTenant))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"items":[],"total":2,"pages":1,"page":3,"per_page":10}`, rr.Body.String())
}
