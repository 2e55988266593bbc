// Package branchrepo persists branches.
package branchrepo

import (
	"transport/internal/core/domain/model/branch"
	"transport/internal/core/domain/model/kernel"
)

// BranchDTO represents the database structure for persisting branches.
type BranchDTO struct {
	Seq     int64  `gorm:"primaryKey;autoIncrement"`
	ID      string `gorm:"uniqueIndex;size:64;not null"`
	Name    string
	Address string
}

// TableName overrides GORM's default naming to use "branches".
func (BranchDTO) TableName() string {
	return "branches"
}

func fromDomain(aggregate *branch.Branch) BranchDTO {
	return BranchDTO{
		ID:      aggregate.ID().String(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
	}
}

func toDomain(dto BranchDTO) (*branch.Branch, error) {
	id, err := kernel.IDFromStringOfKind(dto.ID, kernel.KindBranch)
	if err != nil {
		return nil, err
	}

	return branch.RestoreBranch(id, dto.Name, dto.Address)
}
