package queries

import (
	"errors"

	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/pkg/guard"
)

var ErrGetUserProfileQueryIsNotConstructed = errors.New(
	"GetUserProfileQuery must be created via NewGetUserProfileQuery constructor",
)

// GetUserProfileQuery retrieves the authenticated user's own profile.
type GetUserProfileQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserProfileQuery creates a query for a user's profile.
// Returns an error if the user ID is invalid.
func NewGetUserProfileQuery(userID kernel.UUID) (GetUserProfileQuery, error) {
	profileQuery := GetUserProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := profileQuery.setUserID(userID); err != nil {
		return GetUserProfileQuery{}, err
	}

	return profileQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserProfileQueryIsNotConstructed if validation fails.
func (q GetUserProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetUserProfileQueryIsNotConstructed)
}

// UserID returns the identifier of the profile owner.
func (q GetUserProfileQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetUserProfileQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// UserProfileResponse represents an account profile. The password hash
// never leaves the persistence layer through this view.
type UserProfileResponse struct {
	ID      kernel.UUID
	Email   string
	Name    string
	Role    string
	Address string
	Phone   string
}
