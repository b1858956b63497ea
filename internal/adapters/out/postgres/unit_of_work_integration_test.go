package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// TestUnitOfWorkFactory_Create verifies the factory produces isolated instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated begin calls must not nest.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback without an
// active transaction fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_CommitPersists verifies changes survive the transaction
// boundary and are visible through a new unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	// Visible inside the transaction before commit.
	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))

	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.Equal(testOrder.Items(), retrieved.Items())
}

// TestUnitOfWork_RollbackDiscards verifies rollback undoes every write made
// within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	_, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Order should not exist after rollback")
}

// TestUnitOfWork_TransactionIsolation verifies concurrent units of work do
// not observe each other's uncommitted writes.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.createTestOrder()
	order2 := suite.createTestOrder()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies repositories still work without
// explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

// TestOrderLifecycleWorkflow drives the full order lifecycle through the real
// command and query handlers: place, pay, cancel, and a lookup of an unknown
// identifier.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderLifecycleWorkflow() {
	ctx := context.Background()

	placeHandler := commands.NewPlaceOrderCommandHandler(suite.factory)
	payHandler := commands.NewPayOrderCommandHandler(suite.factory)
	cancelHandler := commands.NewCancelOrderCommandHandler(suite.factory)
	getHandler := queries.NewGetOrderQueryHandler(suite.factory)

	// Place: the order starts in created status.
	items := []order.Item{suite.mustItem("latte", order.Big, 2)}
	placeCmd, err := commands.NewPlaceOrderCommand(items)
	suite.Require().NoError(err)

	placed, err := placeHandler.Handle(ctx, placeCmd)
	suite.Require().NoError(err)
	suite.Equal(order.Created, placed.Status())

	getQuery, err := queries.NewGetOrderQuery(placed.ID())
	suite.Require().NoError(err)
	fetched, err := getHandler.Handle(ctx, getQuery)
	suite.Require().NoError(err)
	suite.Equal(order.Created, fetched.Status())
	suite.Equal(items, fetched.Items())

	// Pay: the order moves to progress.
	payCmd, err := commands.NewPayOrderCommand(placed.ID())
	suite.Require().NoError(err)
	paid, err := payHandler.Handle(ctx, payCmd)
	suite.Require().NoError(err)
	suite.Equal(order.Progress, paid.Status())

	fetched, err = getHandler.Handle(ctx, getQuery)
	suite.Require().NoError(err)
	suite.Equal(order.Progress, fetched.Status())

	// Cancel: unconditional, even from progress.
	cancelCmd, err := commands.NewCancelOrderCommand(placed.ID())
	suite.Require().NoError(err)
	cancelled, err := cancelHandler.Handle(ctx, cancelCmd)
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, cancelled.Status())

	fetched, err = getHandler.Handle(ctx, getQuery)
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, fetched.Status())

	// Lookup of an unused identifier fails with a not-found error.
	unknownQuery, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = getHandler.Handle(ctx, unknownQuery)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestStaleOrderSweepWorkflow verifies the cleanup command cancels only
// orders stuck in created status beyond the threshold.
func (suite *UnitOfWorkIntegrationTestSuite) TestStaleOrderSweepWorkflow() {
	ctx := context.Background()

	staleOrder := suite.createTestOrderAt(time.Now().UTC().Add(-2 * time.Hour))
	freshOrder := suite.createTestOrderAt(time.Now().UTC())
	paidOrder := suite.createTestOrderAt(time.Now().UTC().Add(-2 * time.Hour))
	paidOrder.Pay()

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, staleOrder))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, freshOrder))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, paidOrder))
	suite.Require().NoError(seed.Commit(ctx))

	sweepHandler := commands.NewCancelStaleOrdersCommandHandler(suite.factory)
	sweepCmd, err := commands.NewCancelStaleOrdersCommand(time.Hour)
	suite.Require().NoError(err)

	cancelledCount, err := sweepHandler.Handle(ctx, sweepCmd)
	suite.Require().NoError(err)
	suite.Equal(1, cancelledCount)

	check := suite.factory.Create()
	suite.assertStatus(ctx, check, staleOrder.ID(), order.Cancelled)
	suite.assertStatus(ctx, check, freshOrder.ID(), order.Created)
	suite.assertStatus(ctx, check, paidOrder.ID(), order.Progress)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertStatus(
	ctx context.Context, uow ports.UnitOfWork, id kernel.UUID, expected order.Status,
) {
	retrieved, err := uow.OrderRepository().Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(expected, retrieved.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderAt(time.Now().UTC())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrderAt(createdAt time.Time) *order.Order {
	testOrder, err := order.NewOrder(kernel.NewUUID(), createdAt,
		[]order.Item{suite.mustItem("latte", order.Small, 1)})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) mustItem(product string, size order.Size, quantity int) order.Item {
	item, err := order.NewItem(product, size, quantity)
	suite.Require().NoError(err)
	return item
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
