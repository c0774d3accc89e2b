package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-apartment-listings/internal/jwt"
	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
	"github.com/sbilibin2017/gw-apartment-listings/internal/middlewares"
	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
)

var validate = validator.New()

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse is returned by operations without a payload
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeBody decodes a JSON body into v and writes a 400 when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Log.Warnw("invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// urlUUID parses a uuid path parameter. A malformed id names no resource,
// so callers answer it with their not found response.
func urlUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}

// callerClaims returns the claims stored by the auth middleware and answers
// 401 when the route was mounted without it.
func callerClaims(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims := middlewares.ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Invalid or missing token")
		return nil, false
	}
	return claims, true
}

// parsePage reads page and per_page, ignoring values that do not parse.
func parsePage(r *http.Request) models.Page {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	return models.NewPage(page, perPage)
}

func queryFloat(r *http.Request, name string) *float64 {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(r *http.Request, name string) *int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return nil
	}
	return &v
}
