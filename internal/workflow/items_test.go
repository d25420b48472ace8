package workflow

import (
	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/pkg/store"
	"github.com/golang/mock/gomock"
)

func (s *EngineTestSuite) TestAddItem() {
	s.expectCommitted()
	gomock.InOrder(
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(9)).
			Return(store.Rows{{"5", "pending", "49.99"}}),
		s.mockGW.EXPECT().Query(gomock.Any(), selectProductPrice, int64(3)).Return(store.Rows{{"10.00"}}),
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), reserveStock, int64(3), 2).Return(true),
		s.mockGW.EXPECT().Execute(gomock.Any(), insertOrderItem, int64(9), int64(3), 2, "10.00").Return(true),
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), recalculateOrderTotal, int64(9)).Return(true),
		s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry,
			"order_item", int64(9), "insert", int64(5), gomock.Any()).Return(true),
	)

	s.Require().NoError(s.engine.AddItem(s.T().Context(), 9, 5, 3, 2))
}

func (s *EngineTestSuite) TestAddItem_NonPositiveQuantity() {
	s.expectNoTransaction()

	s.ErrorIs(s.engine.AddItem(s.T().Context(), 9, 5, 3, 0), domain.ErrInvalidArgument)
}

func (s *EngineTestSuite) TestAddItem_NotEnoughStock() {
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(9)).
		Return(store.Rows{{"5", "pending", "49.99"}})
	s.mockGW.EXPECT().Query(gomock.Any(), selectProductPrice, int64(3)).Return(store.Rows{{"10.00"}})
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), reserveStock, int64(3), 100).Return(false)
	s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(s.engine.AddItem(s.T().Context(), 9, 5, 3, 100), domain.ErrPrecondition)
}

func (s *EngineTestSuite) TestAddItem_UnknownProduct() {
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(9)).
		Return(store.Rows{{"5", "pending", "49.99"}})
	s.mockGW.EXPECT().Query(gomock.Any(), selectProductPrice, int64(404)).Return(store.Rows{})

	s.ErrorIs(s.engine.AddItem(s.T().Context(), 9, 5, 404, 1), domain.ErrRecordNotFound)
}

func (s *EngineTestSuite) TestRemoveItem() {
	s.expectCommitted()
	gomock.InOrder(
		s.mockGW.EXPECT().Query(gomock.Any(), selectOwnedPendingItem, int64(31), int64(5)).
			Return(store.Rows{{"9", "3", "2"}}),
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), deleteOrderItem, int64(31)).Return(true),
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(3), 2).Return(true),
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), recalculateOrderTotal, int64(9)).Return(true),
		s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry,
			"order_item", int64(31), "delete", int64(5), gomock.Any()).Return(true),
	)

	s.Require().NoError(s.engine.RemoveItem(s.T().Context(), 31, 5))
}

func (s *EngineTestSuite) TestRemoveItem_NotOwned() {
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), selectOwnedPendingItem, int64(31), int64(6)).Return(store.Rows{})
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(s.engine.RemoveItem(s.T().Context(), 31, 6), domain.ErrPrecondition)
}

func (s *EngineTestSuite) TestRemoveItem_TotalRecalculationFails() {
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), selectOwnedPendingItem, int64(31), int64(5)).
		Return(store.Rows{{"9", "3", "2"}})
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), deleteOrderItem, int64(31)).Return(true)
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(3), 2).Return(true)
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), recalculateOrderTotal, int64(9)).Return(false)
	s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(s.engine.RemoveItem(s.T().Context(), 31, 5), domain.ErrWorkflowAborted)
}
