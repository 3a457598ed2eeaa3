package queries

import (
	"context"
	"database/sql"
	"errors"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserProfileQueryHandler retrieves account profiles from the database.
type GetUserProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetUserProfileQueryHandler creates a handler for profile retrieval.
func NewGetUserProfileQueryHandler(db *gorm.DB) GetUserProfileQueryHandler {
	return GetUserProfileQueryHandler{db: db}
}

// Handle executes the query to retrieve one account's profile.
// Fails with errs.ErrObjectNotFound if the account does not exist.
func (h GetUserProfileQueryHandler) Handle(
	ctx context.Context,
	query GetUserProfileQuery,
) (UserProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return UserProfileResponse{}, err
	}

	var profileResp UserProfileResponse
	var id uuid.UUID
	var address, phone sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			name,
			role,
			address,
			phone
		FROM users
		WHERE id = ?
	`, query.UserID().String()).Row()

	err := row.Scan(&id, &profileResp.Email, &profileResp.Name, &profileResp.Role, &address, &phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserProfileResponse{}, errs.NewObjectNotFoundError("userId", query.UserID())
		}
		return UserProfileResponse{}, err
	}

	if profileResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return UserProfileResponse{}, err
	}
	profileResp.Address = address.String
	profileResp.Phone = phone.String

	return profileResp, nil
}
