package impl

import (
	"context"
	"log/slog"

	deliverycontext "eventer/internal/delivery/context"
	"eventer/internal/domain/entity"
	domainerrors "eventer/internal/domain/errors"
	"eventer/internal/domain/repository"
	"eventer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CompleteProfile creates the caller's one-to-one profile, with fresh
// location and category rows, inside a single transaction.
func (srv *profileService) CompleteProfile(ctx context.Context, userName string, input *usecase.ProfileInput) (*entity.Profile, error) {
	user, err := srv.userRepo.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if user.HasProfile() {
		return nil, domainerrors.ErrProfileAlreadyExists
	}

	var created *entity.Profile

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		location := &entity.Location{
			Street:  input.Location.Street,
			Number:  input.Location.Number,
			City:    input.Location.City,
			Country: input.Location.Country,
		}
		if err := repos.LocationRepo().Create(ctx, location); err != nil {
			return errors.Wrap(err, "failed to create location")
		}

		category := &entity.Category{
			Name:        input.Category.Name,
			Description: input.Category.Description,
		}
		if err := repos.CategoryRepo().Create(ctx, category); err != nil {
			return errors.Wrap(err, "failed to create category")
		}

		profile := &entity.Profile{
			UserID:    user.ID,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Age:       input.Age,
			Location:  *location,
			Category:  *category,
		}
		if err := repos.ProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		created = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to complete profile", slog.String("userName", userName), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Profile completed", slog.Int64("profileID", created.ID), slog.Int64("userID", user.ID))

	return created, nil
}
