package handlers

import (
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
)

// NewSearchHandler returns an HTTP handler for free text and faceted search.
// It reuses ListingLister, so only published listings are returned.
// @Summary Search listings
// @Description q matches title, description, address, city, state and zip_code. Every amenity_id must be present.
// @Tags search
// @Produce json
// @Param q query string false "Free text"
// @Param city query string false "City substring"
// @Param state query string false "State substring"
// @Param zip_code query string false "Zip code substring"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param min_bedrooms query int false "Minimum bedrooms"
// @Param max_bedrooms query int false "Maximum bedrooms"
// @Param min_bathrooms query number false "Minimum bathrooms"
// @Param max_bathrooms query number false "Maximum bathrooms"
// @Param amenity_id query []int false "Required amenity" collectionFormat(multi)
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} models.Paginated[models.Listing]
// @Router /search/ [get]
func NewSearchHandler(svc ListingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := models.ListingFilter{
			Query:        q.Get("q"),
			City:         q.Get("city"),
			State:        q.Get("state"),
			ZipCode:      q.Get("zip_code"),
			MinPrice:     queryFloat(r, "min_price"),
			MaxPrice:     queryFloat(r, "max_price"),
			MinBedrooms:  queryInt(r, "min_bedrooms"),
			MaxBedrooms:  queryInt(r, "max_bedrooms"),
			MinBathrooms: queryFloat(r, "min_bathrooms"),
			MaxBathrooms: queryFloat(r, "max_bathrooms"),
		}
		for _, raw := range q["amenity_id"] {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				continue
			}
			filter.AmenityIDs = append(filter.AmenityIDs, id)
		}

		result, err := svc.List(r.Context(), filter, parsePage(r))
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
