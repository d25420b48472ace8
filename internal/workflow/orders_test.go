package workflow

import (
	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/pkg/store"
	"github.com/golang/mock/gomock"
)

func (s *EngineTestSuite) TestCreateOrder() {
	s.expectCommitted()
	lines := []domain.OrderLine{{ProductID: 3, Quantity: 2}, {ProductID: 4, Quantity: 1}}
	s.mockGW.EXPECT().
		Query(gomock.Any(), callCreateOrder, int64(5), `[{"product_id":3,"quantity":2},{"product_id":4,"quantity":1}]`).
		Return(store.Rows{{"42", "25.00"}})
	s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry,
		"order", int64(42), "insert", int64(5), gomock.Any()).Return(true)

	id, err := s.engine.CreateOrder(s.T().Context(), 5, lines)
	s.Require().NoError(err)
	s.Equal(int64(42), id)
}

func (s *EngineTestSuite) TestCreateOrder_InvalidLines() {
	s.expectNoTransaction()
	s.mockGW.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.engine.CreateOrder(s.T().Context(), 5, nil)
	s.ErrorIs(err, domain.ErrInvalidArgument)

	_, err = s.engine.CreateOrder(s.T().Context(), 5, []domain.OrderLine{{ProductID: 3, Quantity: -1}})
	s.ErrorIs(err, domain.ErrInvalidArgument)
}

func (s *EngineTestSuite) TestCreateOrder_ProcedureFails() {
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), callCreateOrder, gomock.Any()).Return(store.Rows{})
	s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.engine.CreateOrder(s.T().Context(), 5, []domain.OrderLine{{ProductID: 3, Quantity: 1}})
	s.ErrorIs(err, domain.ErrWorkflowAborted)
}

func (s *EngineTestSuite) TestOverrideStatus() {
	s.expectCommitted()
	gomock.InOrder(
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(7)).
			Return(store.Rows{{"5", "pending", "10.00"}}),
		s.mockGW.EXPECT().Query(gomock.Any(), callUpdateOrderStatus, int64(7), "completed", int64(1)).
			Return(store.Rows{{"t"}}),
	)
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, gomock.Any()).Times(0)

	s.Require().NoError(s.engine.OverrideStatus(s.T().Context(), 7, domain.OrderStatusCompleted, 1))
}

func (s *EngineTestSuite) TestOverrideStatus_RestoresStock() {
	tests := []struct {
		from string
		to   domain.OrderStatus
	}{
		{from: "pending", to: domain.OrderStatusCanceled},
		{from: "completed", to: domain.OrderStatusReturned},
	}
	for _, tt := range tests {
		s.Run(string(tt.to), func() {
			s.SetupTest()
			s.expectCommitted()
			gomock.InOrder(
				s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(7)).
					Return(store.Rows{{"5", tt.from, "10.00"}}),
				s.mockGW.EXPECT().Query(gomock.Any(), callUpdateOrderStatus, int64(7), string(tt.to), int64(1)).
					Return(store.Rows{{"t"}}),
				s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, int64(7)).
					Return(store.Rows{{"3", "2"}, {"4", "1"}}),
				s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(3), 2).Return(true),
				s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(4), 1).Return(true),
			)

			s.Require().NoError(s.engine.OverrideStatus(s.T().Context(), 7, tt.to, 1))
		})
	}
}

func (s *EngineTestSuite) TestOverrideStatus_StockRestoreFailsRollsBack() {
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(7)).
		Return(store.Rows{{"5", "pending", "10.00"}})
	s.mockGW.EXPECT().Query(gomock.Any(), callUpdateOrderStatus, int64(7), "canceled", int64(1)).
		Return(store.Rows{{"t"}})
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, int64(7)).Return(store.Rows{{"3", "2"}})
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(3), 2).Return(false)

	s.ErrorIs(s.engine.OverrideStatus(s.T().Context(), 7, domain.OrderStatusCanceled, 1), domain.ErrWorkflowAborted)
}

func (s *EngineTestSuite) TestOverrideStatus_UnknownStatus() {
	s.expectNoTransaction()
	s.mockGW.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(s.engine.OverrideStatus(s.T().Context(), 7, "shipped", 1), domain.ErrInvalidArgument)
}

func (s *EngineTestSuite) TestOverrideStatus_Rejected() {
	// статус читается под блокировкой, недопустимый переход откатывает транзакцию.
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(7)).
		Return(store.Rows{{"5", "canceled", "10.00"}})
	s.mockGW.EXPECT().Query(gomock.Any(), callUpdateOrderStatus, gomock.Any()).Times(0)
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(s.engine.OverrideStatus(s.T().Context(), 7, domain.OrderStatusPending, 1), domain.ErrPrecondition)
}

func (s *EngineTestSuite) TestOverrideStatus_ProcedureReportsFailure() {
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(7)).
		Return(store.Rows{{"5", "completed", "10.00"}})
	s.mockGW.EXPECT().Query(gomock.Any(), callUpdateOrderStatus, int64(7), "returned", int64(1)).
		Return(store.Rows{{"f"}})
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, gomock.Any()).Times(0)

	s.ErrorIs(s.engine.OverrideStatus(s.T().Context(), 7, domain.OrderStatusReturned, 1), domain.ErrWorkflowAborted)
}
