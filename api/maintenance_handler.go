package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmorel/portfolio-cms-backend/services"
)

type maintenanceHandler struct {
	responder  Responder
	logger     zerolog.Logger
	reconciler *services.Reconciler
}

func newMaintenanceHandler(reconciler *services.Reconciler) maintenanceHandler {
	logger := log.With().Str("handlerName", "maintenanceHandler").Logger()

	return maintenanceHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		reconciler: reconciler,
	}
}

// runReconciliation sweeps the bucket against the media table
// @Summary Reconcile storage and database
// @Description Diffs the bucket listing against tracked media and deletes orphaned blobs unless dryRun is set
// @Tags Maintenance
// @Produce json
// @Param dryRun query boolean false "Report only, delete nothing"
// @Success 200 {object} services.ReconcileReport "Sweep report"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Sweep failed"
// @Router /admin/reconcile [post]
func (h maintenanceHandler) runReconciliation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dryRun := r.URL.Query().Get("dryRun") == "true"

		report, err := h.reconciler.Sweep(r.Context(), dryRun)
		if err != nil {
			h.logger.Error().Err(err).Msg("Reconciliation sweep failed")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, report)
	}
}
