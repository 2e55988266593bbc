// Package userrepo persists principals. Only the credential hash is stored;
// plaintext passwords never reach this package.
package userrepo

import (
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting users.
// The unique index on username backs the uniqueness invariant.
type UserDTO struct {
	Seq            int64  `gorm:"primaryKey;autoIncrement"`
	ID             string `gorm:"uniqueIndex;size:64;not null"`
	Username       string `gorm:"uniqueIndex;size:128;not null"`
	CredentialHash string
	Role           string  `gorm:"size:16"`
	BranchID       *string `gorm:"size:64"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	var branchID *string
	if ref := aggregate.Branch(); ref != nil {
		s := ref.String()
		branchID = &s
	}

	return UserDTO{
		ID:             aggregate.ID().String(),
		Username:       aggregate.Username(),
		CredentialHash: aggregate.CredentialHash(),
		Role:           aggregate.Role().String(),
		BranchID:       branchID,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.IDFromStringOfKind(dto.ID, kernel.KindUser)
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	var branchID *kernel.ID
	if dto.BranchID != nil {
		parsed, branchErr := kernel.IDFromStringOfKind(*dto.BranchID, kernel.KindBranch)
		if branchErr != nil {
			return nil, branchErr
		}
		branchID = &parsed
	}

	return user.RestoreUser(id, dto.Username, dto.CredentialHash, role, branchID)
}
