package branchrepo

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/branch"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBranchRepository implements BranchRepository using GORM.
type GormBranchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormBranchRepository creates a new GORM branch repository.
func NewGormBranchRepository(db *gorm.DB, tracker aggregateTracker) *GormBranchRepository {
	return &GormBranchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new branch to the database.
func (r *GormBranchRepository) Add(ctx context.Context, aggregate *branch.Branch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a branch by identifier.
func (r *GormBranchRepository) Get(ctx context.Context, id kernel.ID) (*branch.Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BranchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all branches in creation order.
func (r *GormBranchRepository) GetAll(ctx context.Context) ([]*branch.Branch, error) {
	var dtos []BranchDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	branches := make([]*branch.Branch, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	return branches, nil
}
