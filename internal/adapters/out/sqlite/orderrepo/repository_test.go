package orderrepo_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"storefront/internal/adapters/out/sqlite/orderrepo"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OrderRepositoryTestSuite runs the repository against a real SQLite file.
type OrderRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	path := filepath.Join(suite.T().TempDir(), "orders.db")

	db, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.db = db
	suite.repository = orderrepo.NewGormOrderRepository(db)
}

func (suite *OrderRepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *OrderRepositoryTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	o := suite.createTestOrder("Ada001")

	suite.Require().NoError(suite.repository.Add(ctx, o))

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", "Ada001").Error)
	suite.Equal("Ada", dto.Name)
	suite.Equal(uint32(3), dto.Beans)
	suite.Equal("ada@example.com", dto.Email)
	suite.Equal("shop@coolbeans.biz", dto.Sender)
	suite.Equal("123-45-6789", dto.SSN)
	suite.Equal(int(order.Shipped), dto.BeanStats)
}

func (suite *OrderRepositoryTestSuite) TestAdd_DuplicateCode_AlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("dup123")))

	err := suite.repository.Add(ctx, suite.createTestOrder("dup123"))

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryTestSuite) TestAdd_CodesDifferingInCase_AreDistinct() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("abcdef")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("ABCDEF")))

	suite.assertOrderCount(2)
}

func (suite *OrderRepositoryTestSuite) TestAdd_NotConstructedOrder_Rejected() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()
	o := suite.createTestOrder("xY7pQ2")
	suite.Require().NoError(o.Advance())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.Code())

	suite.Require().NoError(err)
	suite.True(o.IsEqual(got))
	suite.Equal(o.CustomerName(), got.CustomerName())
	suite.Equal(o.Quantity(), got.Quantity())
	suite.Equal(o.CustomerEmail(), got.CustomerEmail())
	suite.Equal(o.SenderEmail(), got.SenderEmail())
	suite.Equal(o.Reference(), got.Reference())
	suite.Equal(order.InTransit, got.Status())
}

func (suite *OrderRepositoryTestSuite) TestGet_MissingOrder_NotFound() {
	code, err := order.NewTrackingCode("nope00")
	suite.Require().NoError(err)

	got, err := suite.repository.Get(context.Background(), code)

	suite.Nil(got)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	o := suite.createTestOrder("upd001")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Advance())
	suite.Require().NoError(o.Advance())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.Code())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, got.Status())
}

func (suite *OrderRepositoryTestSuite) TestUpdate_MissingOrder_NotFound() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder("ghost1"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestGetAll_InsertionOrder() {
	ctx := context.Background()
	codes := []string{"zzzzzz", "aaaaaa", "MMMMMM"}
	for _, c := range codes {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(c)))
	}

	orders, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(orders, len(codes))
	for i, o := range orders {
		suite.Equal(codes[i], o.Code().String())
	}
}

func (suite *OrderRepositoryTestSuite) TestGetAll_Empty() {
	orders, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryTestSuite) TestGetAll_CorruptStatus_Fails() {
	suite.Require().NoError(suite.db.Create(&orderrepo.OrderDTO{
		ID: "bad001", Name: "Ada", Beans: 1, Email: "a@b.c", Sender: "s@b.c", SSN: "x", BeanStats: 9,
	}).Error)

	_, err := suite.repository.GetAll(context.Background())

	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *OrderRepositoryTestSuite) TestDelete_RemovesOrder() {
	ctx := context.Background()
	o := suite.createTestOrder("del001")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o.Code()))

	suite.assertOrderCount(0)
	_, err := suite.repository.Get(ctx, o.Code())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestDelete_MissingOrder_NotFound() {
	code, err := order.NewTrackingCode("del404")
	suite.Require().NoError(err)

	err = suite.repository.Delete(context.Background(), code)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestTableName() {
	suite.Equal("bean_buyer", orderrepo.OrderDTO{}.TableName())
	suite.True(suite.db.Migrator().HasTable("bean_buyer"))
	for _, column := range []string{"id", "name", "beans", "email", "sender", "ssn", "bean_stats"} {
		suite.True(suite.db.Migrator().HasColumn(&orderrepo.OrderDTO{}, column), fmt.Sprintf("column %s", column))
	}
}

func (suite *OrderRepositoryTestSuite) createTestOrder(code string) *order.Order {
	tc, err := order.NewTrackingCode(code)
	suite.Require().NoError(err)

	o, err := order.NewOrder(tc, "Ada", 3, "ada@example.com", "shop@coolbeans.biz", "123-45-6789")
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
