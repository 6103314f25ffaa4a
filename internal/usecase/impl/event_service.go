// Package impl contains the implementation of the application's business logic.
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

// eventService implements the EventUsecase interface. It composes the
// authorization rules (role-gated mutation) and the participation rules
// (capacity bound, duplicate-join prevention) on top of the repositories.
type eventService struct {
	txManager      repository.TransactionManager
	eventRepo      repository.EventRepository
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	EventRepo      repository.EventRepository
	MembershipRepo repository.MembershipRepository
	UserRepo       repository.UserRepository
	Logger         *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		txManager:      params.TxManager,
		eventRepo:      params.EventRepo,
		membershipRepo: params.MembershipRepo,
		userRepo:       params.UserRepo,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddEvent creates fresh location and category rows, constructs a validated
// event and persists it, all within one transaction. Identical location or
// category content still gets new rows; there is no deduplication.
func (srv *eventService) AddEvent(ctx context.Context, input *usecase.EventInput) (*entity.Event, error) {
	var created *entity.Event

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		fields, err := resolveEventFields(ctx, repos, input)
		if err != nil {
			return err
		}

		event, err := entity.NewEvent(fields)
		if err != nil {
			return err
		}

		if err := repos.EventRepo().Create(ctx, event); err != nil {
			return errors.Wrap(err, "failed to create event")
		}

		created = event

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add event", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Event created", slog.Int64("eventID", created.ID), slog.String("name", created.Name))

	return created, nil
}

// GetEvents returns the full event collection in storage order.
func (srv *eventService) GetEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := srv.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

// GetEventByID returns the event or the not-found failure naming the id.
func (srv *eventService) GetEventByID(ctx context.Context, id int64) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.NewEventNotFoundError(id)
		}

		return nil, errors.Wrap(err, "failed to find event by id")
	}

	return event, nil
}

// EditEvent replaces the event's caller-editable fields. Only administrators
// and event moderators may edit. Location and category inputs are resolved to
// fresh rows before the update, so edits are upserts rather than patches.
func (srv *eventService) EditEvent(ctx context.Context, id int64, input *usecase.EventInput, role entity.Role) (*entity.Event, error) {
	if !role.CanEditEvents() {
		return nil, domainerrors.ErrEditForbidden
	}

	var edited *entity.Event

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		event, err := repos.EventRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.NewEventNotFoundError(id)
			}

			return errors.Wrap(err, "failed to find event by id")
		}

		fields, err := resolveEventFields(ctx, repos, input)
		if err != nil {
			return err
		}

		// Apply re-runs the whole invariant set before mutating anything
		// and refreshes LastEdit on success.
		if err := event.Apply(fields); err != nil {
			return err
		}

		if err := repos.EventRepo().Update(ctx, event); err != nil {
			return errors.Wrap(err, "failed to update event")
		}

		edited = event

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to edit event", slog.Int64("eventID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Event edited", slog.Int64("eventID", id), slog.String("role", role.String()))

	return edited, nil
}

// DeleteEvent removes the event. Only administrators may delete. Deletion is
// immediate and irreversible; membership rows cascade at the storage layer.
func (srv *eventService) DeleteEvent(ctx context.Context, id int64, role entity.Role) error {
	if !role.CanDeleteEvents() {
		return domainerrors.ErrDeleteForbidden
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.EventRepo().FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.NewEventNotFoundError(id)
			}

			return errors.Wrap(err, "failed to find event by id")
		}

		if err := repos.EventRepo().Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete event")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete event", slog.Int64("eventID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Event deleted", slog.Int64("eventID", id))

	return nil
}

// JoinEvent adds the named user's profile to the event. The membership check,
// the capacity check and the insert run in one transaction holding a row lock
// on the event, so two concurrent joins on a near-full event cannot both pass
// the capacity check. The unique (profile, event) index backstops duplicates.
func (srv *eventService) JoinEvent(ctx context.Context, eventID int64, userName string) error {
	profile, err := srv.resolveProfile(ctx, userName)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		event, err := repos.EventRepo().FindByIDLocked(ctx, eventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.NewEventNotFoundError(eventID)
			}

			return errors.Wrap(err, "failed to lock event")
		}

		_, err = repos.MembershipRepo().Find(ctx, profile.ID, eventID)
		if err == nil {
			return domainerrors.ErrAlreadyJoined
		}
		if !errors.Is(err, repository.ErrMembershipNotFound) {
			return errors.Wrap(err, "failed to look up membership")
		}

		count, err := repos.MembershipRepo().CountByEvent(ctx, eventID)
		if err != nil {
			return errors.Wrap(err, "failed to count participants")
		}
		if count >= int64(event.MaxParticipants) {
			return domainerrors.ErrEventFull
		}

		membership := &entity.Membership{ProfileID: profile.ID, EventID: eventID}
		if err := repos.MembershipRepo().Create(ctx, membership); err != nil {
			return errors.Wrap(err, "failed to create membership")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to join event",
			slog.Int64("eventID", eventID),
			slog.String("userName", userName),
			slog.Any("error", err),
		)

		return err
	}

	srv.log(ctx).Info("Profile joined event", slog.Int64("eventID", eventID), slog.Int64("profileID", profile.ID))

	return nil
}

// GetEventParticipants returns the membership count, zero when no one joined.
func (srv *eventService) GetEventParticipants(ctx context.Context, eventID int64) (int64, error) {
	if _, err := srv.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return 0, domainerrors.NewEventNotFoundError(eventID)
		}

		return 0, errors.Wrap(err, "failed to find event by id")
	}

	count, err := srv.membershipRepo.CountByEvent(ctx, eventID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count participants")
	}

	return count, nil
}

// GetEventsOfParticipant resolves the username to a profile and returns every
// event that profile has joined, with locations and categories attached.
func (srv *eventService) GetEventsOfParticipant(ctx context.Context, userName string) ([]*entity.Event, error) {
	profile, err := srv.resolveProfile(ctx, userName)
	if err != nil {
		return nil, err
	}

	events, err := srv.membershipRepo.FindEventsByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find events by profile")
	}

	return events, nil
}

// resolveProfile maps a username onto its completed profile. A missing user
// and a missing profile both surface as not-found failures.
func (srv *eventService) resolveProfile(ctx context.Context, userName string) (*entity.Profile, error) {
	user, err := srv.userRepo.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !user.HasProfile() {
		return nil, domainerrors.ErrProfileNotFound
	}

	return user.Profile, nil
}

// resolveEventFields turns raw event input into entity fields, creating fresh
// location and category rows inside the caller's transaction.
func resolveEventFields(ctx context.Context, repos repository.RepositoryFactory, input *usecase.EventInput) (entity.EventFields, error) {
	location := &entity.Location{
		Street:  input.Location.Street,
		Number:  input.Location.Number,
		City:    input.Location.City,
		Country: input.Location.Country,
	}
	if err := repos.LocationRepo().Create(ctx, location); err != nil {
		return entity.EventFields{}, errors.Wrap(err, "failed to create location")
	}

	category := &entity.Category{
		Name:        input.Category.Name,
		Description: input.Category.Description,
	}
	if err := repos.CategoryRepo().Create(ctx, category); err != nil {
		return entity.EventFields{}, errors.Wrap(err, "failed to create category")
	}

	return entity.EventFields{
		Name:            input.Name,
		Date:            input.Date,
		Price:           input.Price,
		MinParticipants: input.MinParticipants,
		MaxParticipants: input.MaxParticipants,
		Location:        *location,
		Category:        *category,
	}, nil
}
