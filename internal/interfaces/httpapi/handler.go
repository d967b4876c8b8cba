package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/logging"
	"github.com/riskibarqy/fpl-annoyer/internal/usecase"
)

const welcomeMessage = "Welcome to the FPL Annoyer API!"

type Handler struct {
	watchdogService    *usecase.WatchdogService
	performanceService *usecase.PerformanceService
	chipService        *usecase.ChipService
	teamService        *usecase.TeamService
	digestService      *usecase.DigestService
	itemService        *usecase.ItemService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	watchdogService *usecase.WatchdogService,
	performanceService *usecase.PerformanceService,
	chipService *usecase.ChipService,
	teamService *usecase.TeamService,
	digestService *usecase.DigestService,
	itemService *usecase.ItemService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		watchdogService:    watchdogService,
		performanceService: performanceService,
		chipService:        chipService,
		teamService:        teamService,
		digestService:      digestService,
		itemService:        itemService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Root")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"message": welcomeMessage, "status": "running"})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type idParam struct {
	ID int64 `validate:"gt=0"`
}

// pathID parses a positive numeric path segment.
func (h *Handler) pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be numeric, got %q", usecase.ErrInvalidInput, name, raw)
	}
	if err := h.validateRequest(r.Context(), idParam{ID: id}); err != nil {
		return 0, fmt.Errorf("%w: %s must be positive", usecase.ErrInvalidInput, name)
	}
	return id, nil
}
