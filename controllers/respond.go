package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"store-management/store"
)

// Store operations get this long before their context is cancelled.
const requestTimeout = 10 * time.Second

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"message": message})
}

// respondWithStoreError maps a store failure onto the HTTP error
// contract: 400 validation, 404 missing key, 409 duplicate key, and a
// generic 500 for anything else with no internal detail leaked.
func respondWithStoreError(w http.ResponseWriter, logger *logrus.Logger, err error, resource string) {
	var verr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, store.ErrConflict):
		respondWithError(w, http.StatusConflict, resource+" already exists")
	case errors.As(err, &verr):
		respondWithError(w, http.StatusBadRequest, verr.Message)
	default:
		logger.WithError(err).WithField("resource", resource).Error("store operation failed")
		respondWithError(w, http.StatusInternalServerError, "Something went wrong!")
	}
}

// decodeBody parses a JSON request body into dst, rejecting unknown
// fields so malformed payloads fail loudly at the boundary.
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
