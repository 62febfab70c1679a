package v1handler

import (
	"bskybridge/pkg/domain"
	"bskybridge/pkg/serrors"
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// DeliveryList is a page of deliveries.
type DeliveryList struct {
	Items      []domain.Delivery `json:"items"`
	NextCursor *string           `json:"nextCursor"`
}

// ListDeliveries returns a page of deliveries, newest first.
func (h *Handler) ListDeliveries(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	limit := DefaultLimit
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxLimit {
			return serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit)
		}
		limit = n
	}

	deliveries, next, err := h.deps.Bridge.Deliveries(r.Context(), query.Get("cursor"), uint(limit)) //nolint: gosec
	if err != nil {
		return err //nolint: wrapcheck
	}

	out := DeliveryList{Items: deliveries}
	if out.Items == nil {
		out.Items = []domain.Delivery{}
	}
	if next != "" {
		out.NextCursor = &next
	}
	writeJSON(r.Context(), w, http.StatusOK, out)

	return nil
}
