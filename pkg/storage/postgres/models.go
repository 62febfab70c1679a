package postgres

import (
	"bskybridge/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgDelivery struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	MessageID string    `db:"message_id"`

	PostURI   string `db:"post_uri"`
	PostCID   string `db:"post_cid"`
	Text      string `db:"text"`
	Truncated bool   `db:"truncated"`
	LinkCount int    `db:"link_count"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgDelivery) ToDomain() *domain.Delivery {
	return &domain.Delivery{
		ID:        domain.DeliveryID(p.ID),
		MessageID: p.MessageID,
		PostURI:   p.PostURI,
		PostCID:   p.PostCID,
		Text:      p.Text,
		Truncated: p.Truncated,
		LinkCount: p.LinkCount,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgDelivery) FromDomain(d domain.Delivery) {
	*p = PgDelivery{
		ID:        uuid.UUID(d.ID),
		MessageID: d.MessageID,
		PostURI:   d.PostURI,
		PostCID:   d.PostCID,
		Text:      d.Text,
		Truncated: d.Truncated,
		LinkCount: d.LinkCount,
		CreatedAt: d.CreatedAt,
	}
}

func pgDeliveriesToDomain(rows []PgDelivery) []domain.Delivery {
	out := make([]domain.Delivery, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out
}
