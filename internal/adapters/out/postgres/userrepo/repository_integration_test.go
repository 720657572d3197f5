package userrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/userrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/user"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type UserRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	tracker   *MockAggregateTracker
	repo      *userrepo.GormUserRepository
}

func (suite *UserRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&userrepo.UserDTO{})
	suite.Require().NoError(err)
}

func (suite *UserRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.repo = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryTestSuite) TestAdd_NewUser() {
	newUser := suite.createTestUser("alice")
	suite.tracker.On("TrackAggregate", newUser.ID(), newUser).Once()

	err := suite.repo.Add(context.Background(), newUser)

	suite.Require().NoError(err)
	suite.tracker.AssertExpectations(suite.T())

	var count int64
	suite.db.Model(&userrepo.UserDTO{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *UserRepositoryTestSuite) TestAdd_DuplicateUsername_Fails() {
	first := suite.createTestUser("alice")
	second := suite.createTestUser("alice")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repo.Add(context.Background(), first))

	err := suite.repo.Add(context.Background(), second)
	suite.Require().Error(err)
}

func (suite *UserRepositoryTestSuite) TestGet_RoundTrip() {
	newUser := suite.createTestUser("alice")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repo.Add(context.Background(), newUser))

	found, err := suite.repo.Get(context.Background(), newUser.ID())

	suite.Require().NoError(err)
	suite.True(newUser.ID().IsEqual(found.ID()))
	suite.Equal("alice", found.Username())
	suite.Equal(newUser.PasswordHash(), found.PasswordHash())
}

func (suite *UserRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryTestSuite) TestGetByUsername_Found() {
	newUser := suite.createTestUser("alice")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repo.Add(context.Background(), newUser))

	found, err := suite.repo.GetByUsername(context.Background(), "alice")

	suite.Require().NoError(err)
	suite.True(newUser.ID().IsEqual(found.ID()))
}

func (suite *UserRepositoryTestSuite) TestGetByUsername_NotFound() {
	_, err := suite.repo.GetByUsername(context.Background(), "nobody")

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryTestSuite) TestGetByUsername_EmptyUsername() {
	_, err := suite.repo.GetByUsername(context.Background(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *UserRepositoryTestSuite) createTestUser(username string) *user.User {
	newUser, err := user.NewUser(kernel.NewUUID(), username, "$2a$10$hash")
	suite.Require().NoError(err)
	return newUser
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
