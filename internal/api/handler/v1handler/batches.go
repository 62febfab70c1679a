package v1handler

import (
	"bskybridge/pkg/domain"
	"net/http"
)

// MessageRequest is a single message of a batch.
type MessageRequest struct {
	ID   string `json:"id,omitempty"`
	Body string `json:"body"`
}

// CreateBatchRequest is the body of POST /v1/batches.
type CreateBatchRequest struct {
	Messages []MessageRequest `json:"messages"`
}

// CreateBatchResponse describes the accepted batch.
type CreateBatchResponse struct {
	JobID            int64    `json:"jobId,omitempty"`
	MessageIDs       []string `json:"messageIds"`
	AlreadyDelivered []string `json:"alreadyDelivered,omitempty"`
	Duplicate        bool     `json:"duplicate,omitempty"`
}

// CreateBatch queues the posted messages as one batch job.
func (h *Handler) CreateBatch(w http.ResponseWriter, r *http.Request) error {
	var req CreateBatchRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		return err
	}

	messages := make([]domain.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, domain.Message{ID: m.ID, Body: m.Body})
	}

	enq, err := h.deps.Bridge.Enqueue(r.Context(), messages)
	if err != nil {
		return err //nolint: wrapcheck
	}

	ids := enq.MessageIDs
	if ids == nil {
		ids = []string{}
	}
	writeJSON(r.Context(), w, http.StatusAccepted, CreateBatchResponse{
		JobID:            enq.JobID,
		MessageIDs:       ids,
		AlreadyDelivered: enq.AlreadyDelivered,
		Duplicate:        enq.Duplicate,
	})

	return nil
}
