package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"sellerhub/internal/adapters/out/postgres/orderrepo"
	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.TimelineEventDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, order_timeline_events").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1001")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertRowCount("orders", 1)
	suite.assertRowCount("order_items", 2)
	suite.assertRowCount("order_timeline_events", 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsFullAggregate() {
	ctx := context.Background()

	original := suite.createTestOrder("ORD-1002")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("ORD-1002", retrieved.Number())
	suite.Equal(original.Customer().Name(), retrieved.Customer().Name())
	suite.Equal(original.Customer().Phone(), retrieved.Customer().Phone())
	suite.Equal(order.StatusNew, retrieved.Status())
	suite.Equal(order.PaymentPending, retrieved.PaymentStatus())
	suite.Equal(original.PaymentAmount().Amount(), retrieved.PaymentAmount().Amount())
	suite.Len(retrieved.Items(), 2)
	suite.Nil(retrieved.Delivery())

	timeline := retrieved.Timeline()
	suite.Require().Len(timeline, 1)
	suite.Equal(order.StatusNew, timeline[0].Status)
	suite.Equal(order.ActorSystem, timeline[0].Actor)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleProgress_PersistsTimelineAndDelivery() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1003")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Drive the order to assigned with a courier attached.
	suite.Require().NoError(testOrder.Transition(order.StatusAccepted, ""))
	suite.Require().NoError(testOrder.Transition(order.StatusPreparing, ""))
	suite.Require().NoError(testOrder.Transition(order.StatusReady, ""))
	courierID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignDelivery(courierID, "Ravi", "+15550001111"))
	suite.Require().NoError(testOrder.SetItemPacked(testOrder.Items()[0].ID(), true))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.StatusAssigned, retrieved.Status())
	suite.Require().NotNil(retrieved.Delivery())
	suite.Equal(courierID, retrieved.Delivery().CourierID())
	suite.Equal("Ravi", retrieved.Delivery().CourierName())

	timeline := retrieved.Timeline()
	suite.Require().Len(timeline, 5)
	suite.Equal(order.StatusAssigned, timeline[4].Status)
	suite.Contains(timeline[4].Description, "Ravi")

	// The packed flag survived the round trip on the right item.
	var packedCount int
	for _, item := range retrieved.Items() {
		if item.Packed() {
			packedCount++
		}
	}
	suite.Equal(1, packedCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1004")
	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsOrdersOldestFirst() {
	ctx := context.Background()

	first := suite.createTestOrder("ORD-2001")
	second := suite.createTestOrder("ORD-2002")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("ORD-2001", orders[0].Number())
	suite.Equal("ORD-2002", orders[1].Number())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatuses_FiltersByStatusSet() {
	ctx := context.Background()

	pending := suite.createTestOrder("ORD-3001")
	accepted := suite.createTestOrder("ORD-3002")
	suite.Require().NoError(accepted.Transition(order.StatusAccepted, ""))
	declined := suite.createTestOrder("ORD-3003")
	suite.Require().NoError(declined.Transition(order.StatusDeclined, "out of stock"))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, pending))
	suite.Require().NoError(suite.repository.Add(ctx, accepted))
	suite.Require().NoError(suite.repository.Add(ctx, declined))

	orders, err := suite.repository.GetAllInStatuses(ctx, order.StatusNew, order.StatusAccepted)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("ORD-3001", orders[0].Number())
	suite.Equal("ORD-3002", orders[1].Number())

	none, err := suite.repository.GetAllInStatuses(ctx)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_DeletesOrderAndChildRows() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-4001")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Remove(ctx, testOrder.ID()))

	suite.assertRowCount("orders", 0)
	suite.assertRowCount("order_items", 0)
	suite.assertRowCount("order_timeline_events", 0)

	err := suite.repository.Remove(ctx, testOrder.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// createTestOrder builds a freshly placed two-item order.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number string) *order.Order {
	customer, err := order.NewCustomer("Asha Patel", "+15550002222")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(250)
	suite.Require().NoError(err)

	first, err := order.NewItem(kernel.NewUUID(), "Milk 1L", 2, price)
	suite.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), "Bread", 1, price)
	suite.Require().NoError(err)

	total, err := kernel.NewMoney(750)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), number, customer, []*order.Item{first, second}, total)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertRowCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
