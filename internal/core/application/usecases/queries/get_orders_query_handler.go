package queries

import (
	"context"
	"database/sql"
	"time"

	"petadoption/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves adoption orders from the database. The
// visibility scope is decided here, not in the transport layer: a non-admin
// actor only ever gets rows matching their own user ID.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the actor's visible orders.
// Results are sorted newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const selectOrders = `
		SELECT
			id,
			user_id,
			pet_id,
			pet_name,
			shipping_name,
			shipping_address,
			shipping_phone,
			status,
			created_at,
			updated_at
		FROM orders
	`

	db := h.db.WithContext(ctx)

	var rows *sql.Rows
	var err error
	if query.ActorRole().IsAdmin() {
		rows, err = db.Raw(selectOrders + ` ORDER BY created_at DESC, id`).Rows()
	} else {
		rows, err = db.Raw(selectOrders+` WHERE user_id = ? ORDER BY created_at DESC, id`,
			query.ActorID().String()).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var orderResp OrderResponse
		var id, userID, petID uuid.UUID
		var updatedAt sql.NullTime
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&userID,
			&petID,
			&orderResp.PetName,
			&orderResp.ShippingName,
			&orderResp.ShippingAddress,
			&orderResp.ShippingPhone,
			&orderResp.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		if orderResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderResp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if orderResp.PetID, err = kernel.UUIDFromBytes(petID[:]); err != nil {
			return nil, err
		}

		orderResp.CreatedAt = createdAt
		if updatedAt.Valid {
			t := updatedAt.Time
			orderResp.UpdatedAt = &t
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
