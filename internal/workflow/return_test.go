package workflow

import (
	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/pkg/store"
	"github.com/golang/mock/gomock"
)

func (s *EngineTestSuite) TestReturn() {
	s.expectCommitted()
	gomock.InOrder(
		s.mockGW.EXPECT().Query(gomock.Any(), callCanReturnOrder, int64(12)).Return(store.Rows{{"t"}}),
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(12)).
			Return(store.Rows{{"5", "completed", "30.00"}}),
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), updateOrderStatusFrom, int64(12), "returned", "completed").
			Return(true),
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, int64(12)).Return(store.Rows{{"3", "3"}}),
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(3), 3).Return(true),
		s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry,
			"order", int64(12), "update", int64(5), DetailReturned).Return(true),
	)

	s.Require().NoError(s.engine.Return(s.T().Context(), 12, 5))
}

func (s *EngineTestSuite) TestReturn_NotEligible() {
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), callCanReturnOrder, int64(12)).Return(store.Rows{{"f"}})
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(s.engine.Return(s.T().Context(), 12, 5), domain.ErrPrecondition)
}

func (s *EngineTestSuite) TestReturn_ForeignOrder() {
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), callCanReturnOrder, int64(12)).Return(store.Rows{{"t"}})
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(12)).
		Return(store.Rows{{"5", "completed", "30.00"}})
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(s.engine.Return(s.T().Context(), 12, 6), domain.ErrPrecondition)
}

func (s *EngineTestSuite) TestReturn_PendingOrderCannotBeReturned() {
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), callCanReturnOrder, int64(12)).Return(store.Rows{{"t"}})
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(12)).
		Return(store.Rows{{"5", "pending", "30.00"}})
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(s.engine.Return(s.T().Context(), 12, 5), domain.ErrPrecondition)
}

func (s *EngineTestSuite) TestReturn_LaterStepFailureRollsBack() {
	expectReturnable := func() {
		s.expectRolledBack()
		s.mockGW.EXPECT().Query(gomock.Any(), callCanReturnOrder, int64(12)).Return(store.Rows{{"t"}})
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(12)).
			Return(store.Rows{{"5", "completed", "30.00"}})
	}

	s.Run("status update", func() {
		s.SetupTest()
		expectReturnable()
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), updateOrderStatusFrom, int64(12), "returned", "completed").
			Return(false)
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, gomock.Any()).Times(0)
		s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		s.ErrorIs(s.engine.Return(s.T().Context(), 12, 5), domain.ErrWorkflowAborted)
	})

	s.Run("stock restore", func() {
		s.SetupTest()
		expectReturnable()
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), updateOrderStatusFrom, int64(12), "returned", "completed").
			Return(true)
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, int64(12)).Return(store.Rows{{"3", "3"}})
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(3), 3).Return(false)
		s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		s.ErrorIs(s.engine.Return(s.T().Context(), 12, 5), domain.ErrWorkflowAborted)
	})

	s.Run("audit", func() {
		s.SetupTest()
		expectReturnable()
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), updateOrderStatusFrom, int64(12), "returned", "completed").
			Return(true)
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderItems, int64(12)).Return(store.Rows{{"3", "3"}})
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), restoreStock, int64(3), 3).Return(true)
		s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry, gomock.Any()).Return(false)

		s.ErrorIs(s.engine.Return(s.T().Context(), 12, 5), domain.ErrWorkflowAborted)
	})
}
