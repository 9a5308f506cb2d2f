package user

import (
	"errors"
	"strings"

	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User was not created via NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is a registered customer. The name is the natural key.
type User struct {
	name       string
	credential Credential
	guard      guard.ConstructorGuard
}

// NewUser validates name and password and derives a fresh credential.
//
// Example:
//
//	u, err := user.NewUser("alice", "s3cret")
//	if err != nil {
//	    return err
//	}
//	_ = u.Authenticate("s3cret") // true
func NewUser(name, password string) (*User, error) {
	name = strings.TrimSpace(name)
	if err := errors.Join(requireValue("username", name), requireValue("password", password)); err != nil {
		return nil, err
	}

	cred, err := DeriveCredential(password)
	if err != nil {
		return nil, err
	}

	return &User{name: name, credential: cred, guard: guard.NewConstructorGuard()}, nil
}

// RestoreUser rebuilds a User from storage without re-deriving anything.
func RestoreUser(name string, key, salt []byte) (*User, error) {
	if err := errors.Join(
		requireValue("username", name),
		requireBytes("password key", key),
		requireBytes("salt", salt),
	); err != nil {
		return nil, err
	}
	return &User{
		name:       name,
		credential: RestoreCredential(key, salt),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a User that bypassed the constructors.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// Name returns the username.
func (u *User) Name() string {
	return u.name
}

// Credential returns the stored credential.
func (u *User) Credential() Credential {
	return u.credential
}

// Authenticate reports whether password matches the stored credential.
func (u *User) Authenticate(password string) bool {
	return u.credential.Verify(password)
}

func requireValue(name, v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requireBytes(name string, v []byte) error {
	if len(v) == 0 {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
