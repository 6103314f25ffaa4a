package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"eventer/internal/domain/entity"
	"eventer/internal/domain/repository"
	"eventer/internal/domain/service"
	"eventer/internal/usecase"
)

// --- Repository mocks ---
//
// Function-field mocks: a test sets only the behaviors it expects. A call on
// an unset field panics, which fails the test and flags the unexpected call.

type mockEventRepo struct {
	createFn         func(ctx context.Context, event *entity.Event) error
	findByIDFn       func(ctx context.Context, id int64) (*entity.Event, error)
	findByIDLockedFn func(ctx context.Context, id int64) (*entity.Event, error)
	findAllFn        func(ctx context.Context) ([]*entity.Event, error)
	updateFn         func(ctx context.Context, event *entity.Event) error
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockEventRepo) Create(ctx context.Context, event *entity.Event) error {
	return m.createFn(ctx, event)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id int64) (*entity.Event, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockEventRepo) FindByIDLocked(ctx context.Context, id int64) (*entity.Event, error) {
	return m.findByIDLockedFn(ctx, id)
}

func (m *mockEventRepo) FindAll(ctx context.Context) ([]*entity.Event, error) {
	return m.findAllFn(ctx)
}

func (m *mockEventRepo) Update(ctx context.Context, event *entity.Event) error {
	return m.updateFn(ctx, event)
}

func (m *mockEventRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockMembershipRepo struct {
	findFn                func(ctx context.Context, profileID, eventID int64) (*entity.Membership, error)
	createFn              func(ctx context.Context, membership *entity.Membership) error
	countByEventFn        func(ctx context.Context, eventID int64) (int64, error)
	findEventsByProfileFn func(ctx context.Context, profileID int64) ([]*entity.Event, error)
}

func (m *mockMembershipRepo) Find(ctx context.Context, profileID, eventID int64) (*entity.Membership, error) {
	return m.findFn(ctx, profileID, eventID)
}

func (m *mockMembershipRepo) Create(ctx context.Context, membership *entity.Membership) error {
	return m.createFn(ctx, membership)
}

func (m *mockMembershipRepo) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	return m.countByEventFn(ctx, eventID)
}

func (m *mockMembershipRepo) FindEventsByProfile(ctx context.Context, profileID int64) ([]*entity.Event, error) {
	return m.findEventsByProfileFn(ctx, profileID)
}

type mockUserRepo struct {
	createFn         func(ctx context.Context, user *entity.User) error
	findByUserNameFn func(ctx context.Context, userName string) (*entity.User, error)
	findAllFn        func(ctx context.Context) ([]*entity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) FindByUserName(ctx context.Context, userName string) (*entity.User, error) {
	return m.findByUserNameFn(ctx, userName)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	return m.findAllFn(ctx)
}

type mockProfileRepo struct {
	createFn       func(ctx context.Context, profile *entity.Profile) error
	findByUserIDFn func(ctx context.Context, userID int64) (*entity.Profile, error)
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	return m.createFn(ctx, profile)
}

func (m *mockProfileRepo) FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error) {
	return m.findByUserIDFn(ctx, userID)
}

type mockLocationRepo struct {
	createFn func(ctx context.Context, location *entity.Location) error
}

func (m *mockLocationRepo) Create(ctx context.Context, location *entity.Location) error {
	return m.createFn(ctx, location)
}

type mockCategoryRepo struct {
	createFn func(ctx context.Context, category *entity.Category) error
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return m.createFn(ctx, category)
}

// --- Transaction fakes ---

// fakeRepoFactory hands the mocks out as transaction-bound repositories.
type fakeRepoFactory struct {
	events      *mockEventRepo
	memberships *mockMembershipRepo
	users       *mockUserRepo
	profiles    *mockProfileRepo
	locations   *mockLocationRepo
	categories  *mockCategoryRepo
}

func (f *fakeRepoFactory) EventRepo() repository.EventRepository           { return f.events }
func (f *fakeRepoFactory) MembershipRepo() repository.MembershipRepository { return f.memberships }
func (f *fakeRepoFactory) UserRepo() repository.UserRepository             { return f.users }
func (f *fakeRepoFactory) ProfileRepo() repository.ProfileRepository       { return f.profiles }
func (f *fakeRepoFactory) LocationRepo() repository.LocationRepository     { return f.locations }
func (f *fakeRepoFactory) CategoryRepo() repository.CategoryRepository     { return f.categories }

// fakeTxManager runs the transactional function directly against the fake
// factory. Rollback semantics are the repository layer's concern, not tested here.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// newTestFactory returns a factory whose location and category repos assign
// sequential IDs on create, mirroring database identity columns.
func newTestFactory() *fakeRepoFactory {
	var nextLocationID, nextCategoryID int64

	return &fakeRepoFactory{
		events:      &mockEventRepo{},
		memberships: &mockMembershipRepo{},
		users:       &mockUserRepo{},
		profiles:    &mockProfileRepo{},
		locations: &mockLocationRepo{
			createFn: func(_ context.Context, location *entity.Location) error {
				nextLocationID++
				location.ID = nextLocationID

				return nil
			},
		},
		categories: &mockCategoryRepo{
			createFn: func(_ context.Context, category *entity.Category) error {
				nextCategoryID++
				category.ID = nextCategoryID

				return nil
			},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEventServiceForTest(factory *fakeRepoFactory) usecase.EventUsecase {
	return NewEventService(EventServiceParams{
		TxManager:      &fakeTxManager{factory: factory},
		EventRepo:      factory.events,
		MembershipRepo: factory.memberships,
		UserRepo:       factory.users,
		Logger:         discardLogger(),
	})
}

func newProfileServiceForTest(factory *fakeRepoFactory) usecase.ProfileUsecase {
	return NewProfileService(ProfileServiceParams{
		TxManager: &fakeTxManager{factory: factory},
		UserRepo:  factory.users,
		Logger:    discardLogger(),
	})
}

// --- Domain service stubs ---

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type stubTokenService struct{}

func (stubTokenService) GenerateToken(userName string, _ entity.Role) (string, error) {
	return "token-" + userName, nil
}

func (stubTokenService) ValidateToken(string) (*service.TokenClaims, error) {
	panic("not used in these tests")
}

func (stubTokenService) AccessTokenDuration() time.Duration {
	return time.Hour
}

func newUserServiceForTest(factory *fakeRepoFactory) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager:    &fakeTxManager{factory: factory},
		UserRepo:     factory.users,
		Hasher:       stubHasher{},
		TokenService: stubTokenService{},
		Logger:       discardLogger(),
	})
}

// --- Sample data ---

func sampleEventInput() *usecase.EventInput {
	return &usecase.EventInput{
		Name:            "Board game night",
		Date:            time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC),
		Price:           5,
		MinParticipants: 5,
		MaxParticipants: 10,
		Location: usecase.LocationInput{
			Street:  "Kerkstraat",
			Number:  12,
			City:    "Antwerp",
			Country: "Belgium",
		},
		Category: usecase.CategoryInput{
			Name:        "Games",
			Description: "Tabletop evenings",
		},
	}
}

func storedEvent(id int64, maxParticipants int) *entity.Event {
	return &entity.Event{
		ID:              id,
		Name:            "Board game night",
		Date:            time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC),
		Price:           5,
		MinParticipants: 5,
		MaxParticipants: maxParticipants,
		Location:        entity.Location{ID: 1, Street: "Kerkstraat", Number: 12, City: "Antwerp", Country: "Belgium"},
		Category:        entity.Category{ID: 1, Name: "Games"},
		LastEdit:        time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		DateCreated:     time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func userWithProfile(userID, profileID int64, userName string) *entity.User {
	return &entity.User{
		ID:       userID,
		UserName: userName,
		Email:    userName + "@example.com",
		Role:     entity.RoleUser,
		Password: "hashed:secret",
		Profile: &entity.Profile{
			ID:        profileID,
			UserID:    userID,
			FirstName: "Jef",
			LastName:  "Vermeulen",
			Age:       28,
		},
	}
}
