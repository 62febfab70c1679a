package postgres

import (
	"bskybridge/pkg/domain"
	"bskybridge/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	deliveriesTable = "deliveries"
)

// StoreDelivery inserts a delivery. When the message already has one the
// insert is a no-op and the existing row is returned.
func (p *PgSQL) StoreDelivery(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error) {
	var row PgDelivery
	row.FromDomain(delivery)

	var stored PgDelivery
	found, err := p.Builder.Insert(deliveriesTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgDelivery{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store delivery into pg: %w", err)
	}
	if !found {
		// conflict on message_id
		return p.DeliveryByMessageID(ctx, delivery.MessageID)
	}

	return stored.ToDomain(), nil
}

// DeliveryByMessageID returns the delivery of messageID or nil.
func (p *PgSQL) DeliveryByMessageID(ctx context.Context, messageID string) (*domain.Delivery, error) {
	var row PgDelivery
	found, err := p.Builder.From(deliveriesTable).
		Where(goqu.I("message_id").Eq(messageID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch delivery by message id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeliveredMessageIDs returns which of messageIDs have a delivery.
func (p *PgSQL) DeliveredMessageIDs(ctx context.Context, messageIDs ...string) (map[string]bool, error) {
	delivered := make(map[string]bool)
	if len(messageIDs) == 0 {
		return delivered, nil
	}

	var ids []string
	if err := p.Builder.From(deliveriesTable).
		Select("message_id").
		Where(goqu.I("message_id").In(messageIDs)).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch delivered message ids: %w", err)
	}
	for _, id := range ids {
		delivered[id] = true
	}

	return delivered, nil
}

// Deliveries returns deliveries after the optional cursor, ordered by
// created_at DESC, id DESC. The cursor is a keyset on both columns.
func (p *PgSQL) Deliveries(ctx context.Context, cursor *storage.Cursor, limit uint) (storage.Deliveries, error) {
	var w []goqu.Expression
	if cursor != nil {
		before := goqu.I("created_at").Lt(cursor.CreatedAt)
		if cursor.ID == (domain.DeliveryID{}) {
			w = append(w, before)
		} else {
			w = append(w, goqu.Or(
				before,
				goqu.And(
					goqu.I("created_at").Eq(cursor.CreatedAt),
					goqu.I("id").Lt(cursor.ID.String()),
				),
			))
		}
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(deliveriesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgDelivery
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Deliveries{}, fmt.Errorf("could not fetch deliveries from pg: %w", err)
	}

	var nextCursor *storage.Cursor
	if limit > 0 && uint(len(rows)) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		nextCursor = &storage.Cursor{CreatedAt: last.CreatedAt, ID: domain.DeliveryID(last.ID)}
	}

	return storage.Deliveries{
		Deliveries: pgDeliveriesToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}
