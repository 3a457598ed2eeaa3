// Package queries contains read-only operations over the storage layer.
// Query handlers bypass the aggregates and read rows directly, returning
// plain response structs shaped for the transport layer.
package queries

import (
	"database/sql"
	"time"

	"petadoption/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// scanPetRows maps pet listing rows to responses. Shared by the public and
// admin listing handlers, which differ only in their WHERE clause.
func scanPetRows(rows *sql.Rows) ([]PetResponse, error) {
	pets := make([]PetResponse, 0)

	for rows.Next() {
		var petResp PetResponse
		var id uuid.UUID
		var description sql.NullString
		var createdAt time.Time

		err := rows.Scan(
			&id,
			&petResp.Name,
			&petResp.Category,
			&petResp.Breed,
			&petResp.Gender,
			&petResp.Weight,
			&petResp.Height,
			&description,
			&petResp.Available,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		petID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		petResp.ID = petID
		petResp.Description = description.String
		petResp.CreatedAt = createdAt

		pets = append(pets, petResp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pets, nil
}
