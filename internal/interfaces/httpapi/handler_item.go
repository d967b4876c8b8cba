package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/fpl-annoyer/internal/usecase"
)

const maxItemBodyBytes = 64 << 10

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListItems")
	defer span.End()

	items, err := h.itemService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list items failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]itemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, itemToDTO(it))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateItem")
	defer span.End()

	var req createItemRequest
	decoder := jsoniter.NewDecoder(http.MaxBytesReader(w, r.Body, maxItemBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.itemService.Create(ctx, usecase.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create item failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, itemToDTO(created))
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetItem")
	defer span.End()

	itemID, err := h.pathID(r, "itemID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	found, err := h.itemService.Get(ctx, itemID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, itemToDTO(found))
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteItem")
	defer span.End()

	itemID, err := h.pathID(r, "itemID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.itemService.Delete(ctx, itemID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
