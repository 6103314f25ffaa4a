package postgres

import (
	"context"

	"eventer/internal/domain/entity"
	domainerrors "eventer/internal/domain/errors"
	"eventer/internal/domain/repository"
	"eventer/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// membershipRepository implements the domain.MembershipRepository interface using GORM.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

// Find looks up the membership row for a (profile, event) pair.
func (repo *membershipRepository) Find(ctx context.Context, profileID, eventID int64) (*entity.Membership, error) {
	var membershipM model.MembershipModel
	err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND event_id = ?", profileID, eventID).
		First(&membershipM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}

	return model.ToMembershipDomain(&membershipM), nil
}

// Create inserts a membership row. The composite primary key rejects a
// duplicate (profile, event) pair even if the service-level check was raced.
func (repo *membershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	membershipM := model.FromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyJoined
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create membership")
	}

	return nil
}

// CountByEvent returns the number of membership rows for the event.
func (repo *membershipRepository) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count participants")
	}

	return count, nil
}

// FindEventsByProfile returns every event the profile has joined, each with
// its location and category preloaded.
func (repo *membershipRepository) FindEventsByProfile(ctx context.Context, profileID int64) ([]*entity.Event, error) {
	var membershipMs []model.MembershipModel
	err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Preload("Event.Location").
		Preload("Event.Category").
		Find(&membershipMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find events by profile")
	}

	events := make([]*entity.Event, len(membershipMs))
	for i := range membershipMs {
		events[i] = model.ToEventDomain(&membershipMs[i].Event)
	}

	return events, nil
}
