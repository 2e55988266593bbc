package userrepo

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/user"
	"transport/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user to the database. The unique index on username makes
// duplicate registrations fail at the storage boundary.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
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

// Get retrieves a user by identifier.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a user by unique login name.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all users in registration order.
func (r *GormUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
