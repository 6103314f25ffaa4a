package impl

import (
	"context"
	"log/slog"

	deliverycontext "eventer/internal/delivery/context"
	"eventer/internal/domain/entity"
	domainerrors "eventer/internal/domain/errors"
	"eventer/internal/domain/repository"
	"eventer/internal/domain/service"
	"eventer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates a new account and logs it in. Entity construction enforces
// the username/password/role invariants; the unique constraints on username
// and email surface as a conflict.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	role := entity.RoleUser
	if input.Role != "" {
		parsed, ok := entity.RoleFromString(input.Role)
		if !ok {
			return nil, domainerrors.NewValidationError("Role must be one of User, Admin or Mod.")
		}
		role = parsed
	}

	// Validate before hashing so an empty password fails fast with the
	// entity's message rather than a hash of "".
	if input.Password == "" {
		return nil, domainerrors.NewValidationError("Password is required.")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user, err := entity.NewUser(input.UserName, input.Email, role, hash)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.UserRepo().Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to sign up user", slog.String("userName", input.UserName), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("userName", user.UserName))

	return srv.issueToken(user)
}

// Login verifies the username/password pair and issues a bearer token
// carrying the username and role claims.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUserName(ctx, input.UserName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same failure as a bad password so usernames cannot be probed.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("userName", input.UserName))

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return srv.issueToken(user)
}

// GetUsers returns every account. Password hashes stay inside the core; the
// delivery layer maps entities to responses without the password field.
func (srv *userService) GetUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) issueToken(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(user.UserName, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{
		Token:    token,
		UserName: user.UserName,
		Role:     user.Role,
	}, nil
}
