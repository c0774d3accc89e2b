package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/services"
)

const listingBody = `{
	"title": "Loft",
	"description": "Bright loft",
	"price": 1800,
	"bedrooms": 2,
	"bathrooms": 1.5,
	"address": "1 Main St",
	"city": "Austin",
	"state": "TX",
	"zip_code": "73301",
	"amenity_ids": [1, 2]
}`

func TestListListingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListingLister(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), gomock.Any(), models.NewPage(2, 5)).
		DoAndReturn(func(_ any, filter models.ListingFilter, page models.Page) (*models.Paginated[models.Listing], error) {
			assert.Equal(t, "austin", filter.City)
			require.NotNil(t, filter.MinPrice)
			assert.Equal(t, 1000.0, *filter.MinPrice)
			assert.Nil(t, filter.MaxPrice)
			require.NotNil(t, filter.MinBedrooms)
			assert.Equal(t, 2, *filter.MinBedrooms)
			assert.Nil(t, filter.MaxBedrooms)
			return models.NewPaginated([]models.Listing{}, 0, page), nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/listings/?city=austin&min_price=1000&max_price=abc&bedrooms=2&page=2&per_page=5", nil)
	rr := httptest.NewRecorder()
	NewListListingsHandler(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"items":[],"total":0,"pages":0,"page":2,"per_page":5}`, rr.Body.String())
}

func TestListListingsHandler_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListingLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	rr := httptest.NewRecorder()
	NewListListingsHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/listings/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
}

func TestGetListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listingID := uuid.New()
	viewerID := uuid.New()

	t.Run("anonymous", func(t *testing.T) {
		mockSvc := NewMockListingGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), listingID, (*uuid.UUID)(nil)).Return(&models.ListingDetail{
			Listing: models.Listing{ListingDB: models.ListingDB{ListingID: listingID, Title: "Loft"}},
		}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "listingID", listingID.String())
		rr := httptest.NewRecorder()
		NewGetListingHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Loft", decodeMap(t, rr)["title"])
	})

	t.Run("owner sees draft", func(t *testing.T) {
		mockSvc := NewMockListingGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), listingID, &viewerID).Return(&models.ListingDetail{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = withURLParam(withCaller(req, viewerID, models.RoleLandlord), "listingID", listingID.String())
		rr := httptest.NewRecorder()
		NewGetListingHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockListingGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), listingID, gomock.Any()).Return(nil, services.ErrListingNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "listingID", listingID.String())
		rr := httptest.NewRecorder()
		NewGetListingHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Listing not found"}`, rr.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		mockSvc := NewMockListingGetter(ctrl)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "listingID", "42")
		rr := httptest.NewRecorder()
		NewGetListingHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockListingCreator)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: listingBody,
			mockSetup: func(m *MockListingCreator) {
				m.EXPECT().Create(gomock.Any(), ownerID, gomock.Any()).
					DoAndReturn(func(_ any, _ uuid.UUID, input models.ListingInput) (*models.Listing, error) {
						assert.Equal(t, "Loft", *input.Title)
						assert.Equal(t, []int64{1, 2}, *input.AmenityIDs)
						assert.Nil(t, input.IsPublished)
						return &models.Listing{ListingDB: models.ListingDB{Title: *input.Title}}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "missing required field",
			body:          `{"title":"Loft","price":1800}`,
			mockSetup:     func(m *MockListingCreator) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing required fields",
		},
		{
			name:          "invalid json",
			body:          `{"title":`,
			mockSetup:     func(m *MockListingCreator) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "service error",
			body: listingBody,
			mockSetup: func(m *MockListingCreator) {
				m.EXPECT().Create(gomock.Any(), ownerID, gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockListingCreator(ctrl)
			tt.mockSetup(mockSvc)

			req := withCaller(httptest.NewRequest(http.MethodPost, "/api/listings/", bytes.NewBufferString(tt.body)), ownerID, models.RoleLandlord)
			rr := httptest.NewRecorder()
			NewCreateListingHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			body := decodeMap(t, rr)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}
			assert.Equal(t, "Listing created successfully", body["message"])
			assert.Equal(t, "Loft", body["listing"].(map[string]any)["title"])
		})
	}
}

func TestCreateListingHandler_NoClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := httptest.NewRecorder()
	NewCreateListingHandler(NewMockListingCreator(ctrl)).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(listingBody)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUpdateListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	listingID := uuid.New()

	tests := []struct {
		name          string
		mockErr       error
		expectedCode  int
		expectedError string
	}{
		{name: "success", expectedCode: http.StatusOK},
		{name: "not found", mockErr: services.ErrListingNotFound, expectedCode: http.StatusNotFound, expectedError: "Listing not found"},
		{name: "not owner", mockErr: services.ErrForbidden, expectedCode: http.StatusForbidden, expectedError: "You do not have permission to update this listing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockListingUpdater(ctrl)
			mockSvc.EXPECT().Update(gomock.Any(), ownerID, listingID, gomock.Any()).
				DoAndReturn(func(_ any, _, _ uuid.UUID, input models.ListingInput) (*models.Listing, error) {
					assert.Equal(t, 2000.0, *input.Price)
					assert.Nil(t, input.Title)
					if tt.mockErr != nil {
						return nil, tt.mockErr
					}
					return &models.Listing{ListingDB: models.ListingDB{ListingID: listingID, Price: *input.Price}}, nil
				})

			req := httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(`{"price":2000}`))
			req = withURLParam(withCaller(req, ownerID, models.RoleLandlord), "listingID", listingID.String())
			rr := httptest.NewRecorder()
			NewUpdateListingHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			body := decodeMap(t, rr)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}
			assert.Equal(t, "Listing updated successfully", body["message"])
		})
	}
}

func TestDeleteListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	listingID := uuid.New()

	tests := []struct {
		name         string
		mockErr      error
		expectedCode int
	}{
		{name: "success", expectedCode: http.StatusOK},
		{name: "not found", mockErr: services.ErrListingNotFound, expectedCode: http.StatusNotFound},
		{name: "not owner", mockErr: services.ErrForbidden, expectedCode: http.StatusForbidden},
		{name: "internal", mockErr: errors.New("boom"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockListingDeleter(ctrl)
			mockSvc.EXPECT().Delete(gomock.Any(), ownerID, listingID).Return(tt.mockErr)

			req := withURLParam(withCaller(httptest.NewRequest(http.MethodDelete, "/", nil), ownerID, models.RoleLandlord), "listingID", listingID.String())
			rr := httptest.NewRecorder()
			NewDeleteListingHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.mockErr == nil {
				assert.JSONEq(t, `{"message":"Listing deleted successfully"}`, rr.Body.String())
			}
		})
	}
}
