package queries

import (
	"errors"

	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/pkg/guard"
)

var ErrGetAllPetsQueryIsNotConstructed = errors.New(
	"GetAllPetsQuery must be created via NewGetAllPetsQuery constructor",
)

// GetAllPetsQuery retrieves every pet regardless of availability. This is
// the admin inventory view, so the query carries the actor's role.
type GetAllPetsQuery struct { //nolint:recvcheck //using for validation
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewGetAllPetsQuery creates a query for the admin pet inventory.
// Returns an error if the actor role is invalid.
func NewGetAllPetsQuery(actorRole user.Role) (GetAllPetsQuery, error) {
	allQuery := GetAllPetsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := allQuery.setActorRole(actorRole); err != nil {
		return GetAllPetsQuery{}, err
	}

	return allQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllPetsQueryIsNotConstructed if validation fails.
func (q GetAllPetsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPetsQueryIsNotConstructed)
}

// ActorRole returns the role of the user requesting the inventory.
func (q GetAllPetsQuery) ActorRole() user.Role {
	return q.actorRole
}

func (q *GetAllPetsQuery) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorRole = actorRole
	return nil
}
