package userrepo

import (
	"trippy/internal/core/domain/model/user"
)

// UserDTO is the persistence representation of user.User. Only the derived
// verifier and its salt are stored.
type UserDTO struct {
	Name        string `gorm:"primaryKey"`
	PasswordKey []byte `gorm:"column:password_key;type:bytea;not null"`
	Salt        []byte `gorm:"type:bytea;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	c := u.Credential()
	return UserDTO{
		Name:        u.Name(),
		PasswordKey: c.Key(),
		Salt:        c.Salt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(dto.Name, dto.PasswordKey, dto.Salt)
}
