package workflow

import (
	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/pkg/store"
	"github.com/golang/mock/gomock"
)

func (s *EngineTestSuite) TestApprove() {
	s.expectCommitted()
	gomock.InOrder(
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(8)).
			Return(store.Rows{{"5", "pending", "10.00"}}),
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), updateOrderStatus, int64(8), "completed").Return(true),
		s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry,
			"order", int64(8), "update", int64(2), DetailApprovedByManager).Return(true),
	)

	s.Require().NoError(s.engine.Approve(s.T().Context(), 8, 2))
}

func (s *EngineTestSuite) TestApprove_NotPending() {
	for _, status := range []string{"completed", "canceled", "returned"} {
		s.Run(status, func() {
			s.SetupTest()
			s.expectRolledBack()
			s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(8)).
				Return(store.Rows{{"5", status, "10.00"}})
			s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			s.ErrorIs(s.engine.Approve(s.T().Context(), 8, 2), domain.ErrPrecondition)
		})
	}
}

func (s *EngineTestSuite) TestApprove_MissingOrder() {
	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(8)).Return(store.Rows{})

	s.ErrorIs(s.engine.Approve(s.T().Context(), 8, 2), domain.ErrRecordNotFound)
}

func (s *EngineTestSuite) TestApprove_LaterStepFailureRollsBack() {
	s.Run("status update", func() {
		s.SetupTest()
		s.expectRolledBack()
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(8)).
			Return(store.Rows{{"5", "pending", "10.00"}})
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), updateOrderStatus, int64(8), "completed").Return(false)
		s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		s.ErrorIs(s.engine.Approve(s.T().Context(), 8, 2), domain.ErrWorkflowAborted)
	})

	s.Run("audit", func() {
		s.SetupTest()
		s.expectRolledBack()
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(8)).
			Return(store.Rows{{"5", "pending", "10.00"}})
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), updateOrderStatus, int64(8), "completed").Return(true)
		s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry, gomock.Any()).Return(false)

		s.ErrorIs(s.engine.Approve(s.T().Context(), 8, 2), domain.ErrWorkflowAborted)
	})
}
