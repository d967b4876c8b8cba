package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fpl-annoyer/internal/usecase"
)

func (h *Handler) Watchdog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Watchdog")
	defer span.End()

	teamID, err := h.pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.watchdogService.Check(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "watchdog check failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterReportToDTO(report))
}

func (h *Handler) Shame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Shame")
	defer span.End()

	teamID, err := h.pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, ok, err := h.performanceService.Compare(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "performance compare failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no finished gameweek data for team %d", usecase.ErrNotFound, teamID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, performanceReportToDTO(report))
}

func (h *Handler) TripleCaptain(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TripleCaptain")
	defer span.End()

	teamID, err := h.pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	advice, err := h.chipService.Advise(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "triple captain advice failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, chipAdviceToDTO(advice))
}

func (h *Handler) VerifyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.VerifyTeam")
	defer span.End()

	teamID, err := h.pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	verification, err := h.teamService.Verify(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamVerificationDTO{Valid: verification.Valid, Name: verification.Name})
}

func (h *Handler) TeamInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamInfo")
	defer span.End()

	teamID, err := h.pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.teamService.Info(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "team info failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamInfoToDTO(entry))
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Status")
	defer span.End()

	teamID, err := h.pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	digest, err := h.digestService.Status(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "status digest failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, digestToDTO(digest))
}
