package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "salesdesk/internal/adapters/out/postgres"
	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/core/domain/model/user"
	"salesdesk/internal/core/ports"
	"salesdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and runs the schema migration.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, users").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.UserRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	buyer := suite.createTestUser("buyer1", kernel.RoleBuyer)
	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.AssignBuyer(buyer.ID()))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, buyer))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	// visible inside the transaction
	_, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	stored, err := fresh.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(kernel.SameUUID(stored.Confirmation().Buyer(), buyer.ID()))

	storedBuyer, err := fresh.UserRepository().Get(ctx, buyer.ID())
	suite.Require().NoError(err)
	suite.Equal("buyer1", storedBuyer.Username())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()

	confirmer := suite.createTestUser("confirmer1", kernel.RoleConfirmer)
	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, confirmer))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err := fresh.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.UserRepository().Get(ctx, confirmer.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WritesHiddenUntilCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()
	readModel := postgres_adapter.NewGormReadModel(suite.db)

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	testOrder.SetAdditionalNotes("updated")
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))

	_, err := readModel.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Commit(ctx))

	found, err := readModel.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("updated", found.AdditionalNotes())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReadModel_ReadsCommittedState() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	readModel := postgres_adapter.NewGormReadModel(suite.db)
	found, err := readModel.OrderRepository().Find(ctx, order.Criteria{UnassignedOnly: true})
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(testOrder.ID(), found[0].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	contact, err := order.NewContact("0661000000", "Yacine")
	suite.Require().NoError(err)
	slot, err := kernel.ParseSlot("2024-07-01", "18:00")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		Kind:          order.KindCourse,
		Price:         decimal.NewFromInt(3500),
		Contact:       contact,
		ScheduledTime: slot,
		Description:   "Excel course",
	}, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestUser(username string, role kernel.Role) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), username, role)
	suite.Require().NoError(err)
	return u
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
