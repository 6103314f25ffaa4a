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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user. Unique constraints on username and email
// surface as the domain's already-exists conflict.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// FindByUserName retrieves a single user by username, preloading the profile
// with its location and category when one exists.
func (repo *userRepository) FindByUserName(ctx context.Context, userName string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Profile.Location").
		Preload("Profile.Category").
		Where("user_name = ?", userName).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return model.ToUserDomain(&userM), nil
}

// FindAll returns every user account with profiles preloaded.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Profile.Location").
		Preload("Profile.Category").
		Order("id").
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, len(userMs))
	for i := range userMs {
		users[i] = model.ToUserDomain(&userMs[i])
	}

	return users, nil
}

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create persists a new profile. The unique index on user_id keeps the
// profile one-to-one with its account.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := model.FromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID

	return nil
}

// FindByUserID retrieves the profile belonging to a user account.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Preload("Location").
		Preload("Category").
		Where("user_id = ?", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return model.ToProfileDomain(&profileM), nil
}
