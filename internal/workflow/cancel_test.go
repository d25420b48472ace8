package workflow

import (
	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/pkg/store"
	"github.com/golang/mock/gomock"
)

func (s *EngineTestSuite) TestCancelByAdmin_RestoresStockAndAudits() {
	s.expectCommitted()
	gomock.InOrder(
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), cancelOrderByAdmin, int64(7)).Return(true),
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, int64(7)).Return(store.Rows{{"3", "2"}}),
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(3), 2).Return(true),
		s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry,
			"order", int64(7), "update", int64(1), DetailCanceledByAdmin).Return(true),
	)

	s.Require().NoError(s.engine.CancelByAdmin(s.T().Context(), 7, 1))
}

func (s *EngineTestSuite) TestCancelByAdmin_StatusUpdateFails() {
	s.expectRolledBack()
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), cancelOrderByAdmin, int64(7)).Return(false)
	s.mockGW.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(s.engine.CancelByAdmin(s.T().Context(), 7, 1), domain.ErrWorkflowAborted)
}

func (s *EngineTestSuite) TestCancelByAdmin_FinalStatusKeepsStock() {
	// для canceled и returned охраняемый UPDATE не находит строку, склад не трогаем.
	for _, status := range []domain.OrderStatus{domain.OrderStatusCanceled, domain.OrderStatusReturned} {
		s.Run(string(status), func() {
			s.SetupTest()
			s.expectRolledBack()
			s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), cancelOrderByAdmin, int64(7)).Return(false)
			s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, gomock.Any()).Times(0)
			s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, gomock.Any()).Times(0)
			s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry, gomock.Any()).Times(0)

			s.ErrorIs(s.engine.CancelByAdmin(s.T().Context(), 7, 1), domain.ErrWorkflowAborted)
		})
	}
}

func (s *EngineTestSuite) TestCancelByAdmin_StockRestoreFails() {
	s.expectRolledBack()
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), cancelOrderByAdmin, int64(7)).Return(true)
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, int64(7)).
		Return(store.Rows{{"3", "2"}, {"4", "1"}})
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(3), 2).Return(true)
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(4), 1).Return(false)
	s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry, gomock.Any()).Times(0)

	s.ErrorIs(s.engine.CancelByAdmin(s.T().Context(), 7, 1), domain.ErrWorkflowAborted)
}

func (s *EngineTestSuite) TestCancelByAdmin_AuditFails() {
	s.expectRolledBack()
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), cancelOrderByAdmin, int64(7)).Return(true)
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, int64(7)).Return(store.Rows{})
	s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry, gomock.Any()).Return(false)

	s.ErrorIs(s.engine.CancelByAdmin(s.T().Context(), 7, 1), domain.ErrWorkflowAborted)
}

func (s *EngineTestSuite) TestCancelPending_ByManager() {
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderState, int64(10)).Return(store.Rows{{"5", "pending"}})
	s.expectCommitted()
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), updateOrderStatusFrom, int64(10), "canceled", "pending").Return(true)
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, int64(10)).Return(store.Rows{{"3", "1"}})
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(3), 1).Return(true)
	s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry,
		"order", int64(10), "update", int64(2), DetailCanceledByManager).Return(true)

	s.Require().NoError(s.engine.CancelPending(s.T().Context(), 10, 2, nil))
}

func (s *EngineTestSuite) TestCancelPending_NotPendingNeverOpensTransaction() {
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderState, int64(10)).Return(store.Rows{{"5", "completed"}})
	s.expectNoTransaction()

	s.ErrorIs(s.engine.CancelPending(s.T().Context(), 10, 2, nil), domain.ErrPrecondition)
}

func (s *EngineTestSuite) TestCancelPending_ForeignOrder() {
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderState, int64(10)).Return(store.Rows{{"5", "pending"}})
	s.expectNoTransaction()

	stranger := int64(6)
	s.ErrorIs(s.engine.CancelPending(s.T().Context(), 10, stranger, &stranger), domain.ErrPrecondition)
}

func (s *EngineTestSuite) TestCancelPending_MissingOrder() {
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderState, int64(404)).Return(store.Rows{})
	s.expectNoTransaction()

	s.ErrorIs(s.engine.CancelPending(s.T().Context(), 404, 2, nil), domain.ErrRecordNotFound)
}

func (s *EngineTestSuite) TestCancelPending_StatusChangedConcurrently() {
	owner := int64(5)
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderState, int64(10)).Return(store.Rows{{"5", "pending"}})
	s.expectRolledBack()
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), updateOrderStatusFrom, int64(10), "canceled", "pending").Return(false)
	s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(s.engine.CancelPending(s.T().Context(), 10, owner, &owner), domain.ErrWorkflowAborted)
}
