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

// eventRepository implements the domain.EventRepository interface using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// Create persists a new event and copies the generated ID back to the entity.
// The associated location and category rows already exist at this point, so
// association auto-creation is skipped.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := model.FromEventDomain(event)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid location or category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID

	return nil
}

// FindByID retrieves a single event with its location and category preloaded.
func (repo *eventRepository) FindByID(ctx context.Context, id int64) (*entity.Event, error) {
	return repo.findByID(ctx, id, false)
}

// FindByIDLocked retrieves the event holding a FOR UPDATE row lock, so the
// capacity check and the membership insert of the surrounding transaction
// are serialized against concurrent joins.
func (repo *eventRepository) FindByIDLocked(ctx context.Context, id int64) (*entity.Event, error) {
	return repo.findByID(ctx, id, true)
}

func (repo *eventRepository) findByID(ctx context.Context, id int64, locked bool) (*entity.Event, error) {
	query := repo.db.WithContext(ctx).
		Preload("Location").
		Preload("Category")
	if locked {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: model.EventModel{}.TableName()}})
	}

	var eventM model.EventModel
	if err := query.First(&eventM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by id")
	}

	return model.ToEventDomain(&eventM), nil
}

// FindAll returns every event in insertion order with sub-entities preloaded.
func (repo *eventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	var eventMs []model.EventModel
	if err := repo.db.WithContext(ctx).
		Preload("Location").
		Preload("Category").
		Order("id").
		Find(&eventMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, len(eventMs))
	for i := range eventMs {
		events[i] = model.ToEventDomain(&eventMs[i])
	}

	return events, nil
}

// Update persists the current state of an already-stored event.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	eventM := model.FromEventDomain(event)

	result := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Model(&model.EventModel{}).
		Where("id = ?", eventM.ID).
		Updates(map[string]any{
			"name":             eventM.Name,
			"date":             eventM.Date,
			"price":            eventM.Price,
			"min_participants": eventM.MinParticipants,
			"max_participants": eventM.MaxParticipants,
			"location_id":      eventM.LocationID,
			"category_id":      eventM.CategoryID,
			"last_edit":        eventM.LastEdit,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete removes the event row. Membership rows cascade via the foreign key.
func (repo *eventRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.EventModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}
