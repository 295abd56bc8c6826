package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/piano-chords/internal/logger"
	"github.com/Conceptual-Machines/piano-chords/internal/store"
)

// Error codes returned in the "code" field of error bodies
const (
	codeStoreNotFound  = "store_not_found"
	codeStoreEmpty     = "store_empty"
	codeStoreMalformed = "store_malformed"
	codeStoreError     = "store_error"
	codeNotFound       = "not_found"
	codeBadRequest     = "bad_request"
	codeRenderFailed   = "render_failed"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error": message,
		"code":  code,
	})
}

// respondStoreError maps a catalog read failure to a response.
// A missing store is the caller's problem (not generated yet); an empty or
// malformed one is ours.
func respondStoreError(c *gin.Context, catalog string, err error) {
	fields := logger.WithContext(c)
	fields["catalog"] = catalog

	switch {
	case errors.Is(err, store.ErrNotFound):
		logger.Warn("Catalog store not found", fields)
		respondError(c, http.StatusNotFound, codeStoreNotFound,
			"The "+catalog+" catalog has not been generated yet. Run the generator first.")
	case errors.Is(err, store.ErrEmpty):
		logger.Error("Catalog store is empty", err, fields)
		respondError(c, http.StatusInternalServerError, codeStoreEmpty, "The "+catalog+" catalog file is empty")
	case errors.Is(err, store.ErrMalformed):
		logger.Error("Catalog store is malformed", err, fields)
		respondError(c, http.StatusInternalServerError, codeStoreMalformed, "Invalid "+catalog+" data format")
	default:
		logger.Error("Failed to load catalog", err, fields)
		respondError(c, http.StatusInternalServerError, codeStoreError, "Failed to load "+catalog)
	}
}
