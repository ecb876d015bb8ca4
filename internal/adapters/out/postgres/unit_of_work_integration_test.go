package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fnbpos/internal/adapters/out/postgres"
	"fnbpos/internal/core/domain/model/fnb"
	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite tests the GORM-based Unit of Work and the
// capability probe against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines, order_voucher_details").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx), "Should begin transaction successfully")
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx), "Should commit transaction successfully")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx), "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), postgres_adapter.ErrNoActiveTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), postgres_adapter.ErrNoActiveTransaction)

	// A deferred rollback after commit is a no-op error.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), postgres_adapter.ErrNoActiveTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsOrderAndTransition() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder, items := createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder, items))

	// Re-read inside the transaction, then apply the transition.
	fetched, fetchedItems, err := uow.OrderRepository().Get(ctx, testOrder.ID)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().ReplaceLineItems(ctx, fetched.ID, fetchedItems.MarkConfirmedToKitchen()))
	suite.Require().NoError(fetched.MarkConfirmed(time.Now()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, fetched))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, retrievedItems, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID)
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.False(retrievedItems.HasUnconfirmed())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder, items := createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder, items))

	_, _, err := uow.OrderRepository().Get(ctx, testOrder.ID)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	_, _, err = suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID)
	suite.Require().Error(err, "Order should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1, items1 := createTestOrder()
	order2, items2 := createTestOrder()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1, items1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2, items2))

	// Each transaction should only see its own changes
	_, _, err := uow1.OrderRepository().Get(ctx, order1.ID)
	suite.Require().NoError(err, "UOW1 should see order1")
	_, _, err = uow1.OrderRepository().Get(ctx, order2.ID)
	suite.Require().Error(err, "UOW1 should not see order2")
	_, _, err = uow2.OrderRepository().Get(ctx, order2.ID)
	suite.Require().NoError(err, "UOW2 should see order2")
	_, _, err = uow2.OrderRepository().Get(ctx, order1.ID)
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, _, err = newUow.OrderRepository().Get(ctx, order1.ID)
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, _, err = newUow.OrderRepository().Get(ctx, order2.ID)
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder, items := createTestOrder()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder, items))

	retrieved, _, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID)
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID, retrieved.ID)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCapabilityProbe_ReflectsSchema() {
	ctx := context.Background()
	probe := postgres_adapter.NewGormCapabilityProbe(suite.db)

	capabilities, err := probe.Probe(ctx)
	suite.Require().NoError(err)
	suite.Equal(fnb.Capabilities{BranchAPI: false}, capabilities)

	suite.Require().NoError(suite.db.Exec("CREATE TABLE branches (id uuid PRIMARY KEY)").Error)
	defer func() {
		suite.Require().NoError(suite.db.Exec("DROP TABLE branches").Error)
	}()

	// Nothing is cached between probes.
	capabilities, err = probe.Probe(ctx)
	suite.Require().NoError(err)
	suite.True(capabilities.BranchAPI)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCapabilityProbe_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := postgres_adapter.NewGormCapabilityProbe(suite.db).Probe(ctx)

	suite.Require().ErrorIs(err, context.Canceled)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

// createTestOrder creates a valid new order with two lines.
func createTestOrder() (*order.Order, order.LineItems) {
	rate := kernel.VAT8
	o := &order.Order{
		ID:        kernel.NewUUID(),
		Code:      "DH" + kernel.NewUUID().String()[:8],
		CreatedAt: time.Now(),
		TaxMode:   order.TaxModeStandard,
	}
	items := order.LineItems{
		{ID: kernel.NewUUID(), ProductID: kernel.NewUUID(), Name: "Ca phe sua", Quantity: 2, Price: 30000, VATRate: &rate},
		{ID: kernel.NewUUID(), ProductID: kernel.NewUUID(), Name: "Banh mi", Quantity: 1, Price: 25000},
	}
	return o, items
}
