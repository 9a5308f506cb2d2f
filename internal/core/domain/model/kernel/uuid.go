package kernel

import (
	"fmt"

	"trippy/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("order id")

// UUID identifies an order independently of its (username, package) natural key.
// The zero value is rejected by Validate.
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// ParseUUID reads the canonical textual form.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores an identifier read from storage. The nil UUID is rejected.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d bytes: %w", len(b), err))
	}
	restored := UUID{id: id}
	if err = restored.Validate(); err != nil {
		return UUID{}, err
	}
	return restored, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Value exposes the google/uuid value for persistence.
func (u UUID) Value() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText renders the identifier as its canonical string in JSON.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}
