package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/piano-chords/internal/catalog"
	"github.com/Conceptual-Machines/piano-chords/internal/logger"
	"github.com/Conceptual-Machines/piano-chords/internal/regen"
)

type RegenerateHandler struct {
	runner *regen.Runner
}

func NewRegenerateHandler(runner *regen.Runner) *RegenerateHandler {
	return &RegenerateHandler{runner: runner}
}

// Regenerate rebuilds both catalogs in-process and reports the outcome.
// The only start failure is regen.ErrBusy.
func (h *RegenerateHandler) Regenerate(c *gin.Context) {
	logger.Info("Regeneration requested", logger.WithContext(c))

	outcome, err := h.runner.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusConflict, regen.Outcome{
			Message: "Regeneration already running",
			Error:   err.Error(),
			Reports: []catalog.Report{},
		})
		return
	}

	status := http.StatusOK
	if !outcome.Success {
		status = http.StatusInternalServerError
	}
	c.JSON(status, outcome)
}
