package workflow

import (
	"context"
	"io"
	"testing"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/workflow/mocks"
	"github.com/fsdevblog/orderflow/pkg/store"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockGW   *mocks.MockGateway
	engine   *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGW = mocks.NewMockGateway(s.mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)
	s.engine = NewEngine(s.mockGW, l)
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectCommitted транзакция открыта и зафиксирована, отката нет.
func (s *EngineTestSuite) expectCommitted() {
	s.mockGW.EXPECT().Begin(gomock.Any()).Return(true)
	s.mockGW.EXPECT().Commit(gomock.Any()).Return(true)
	s.mockGW.EXPECT().Rollback(gomock.Any()).Times(0)
}

// expectRolledBack транзакция открыта и откачена, Commit не вызывается.
func (s *EngineTestSuite) expectRolledBack() {
	s.mockGW.EXPECT().Begin(gomock.Any()).Return(true)
	s.mockGW.EXPECT().Rollback(gomock.Any()).Return(true)
	s.mockGW.EXPECT().Commit(gomock.Any()).Times(0)
}

func (s *EngineTestSuite) expectNoTransaction() {
	s.mockGW.EXPECT().Begin(gomock.Any()).Times(0)
	s.mockGW.EXPECT().Commit(gomock.Any()).Times(0)
	s.mockGW.EXPECT().Rollback(gomock.Any()).Times(0)
	s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
}

func (s *EngineTestSuite) TestBeginFailureAbortsWorkflow() {
	s.mockGW.EXPECT().Begin(gomock.Any()).Return(false)
	s.mockGW.EXPECT().Commit(gomock.Any()).Times(0)
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := s.engine.CancelByAdmin(s.T().Context(), 7, 1)
	s.ErrorIs(err, domain.ErrWorkflowAborted)
	s.ErrorIs(err, store.ErrBeginFailed)
}

func (s *EngineTestSuite) TestCommitFailureIsReported() {
	s.mockGW.EXPECT().Begin(gomock.Any()).Return(true)
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(8)).
		Return(store.Rows{{"5", "pending", "10.00"}})
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), updateOrderStatus, int64(8), "completed").Return(true)
	s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry, gomock.Any()).Return(true)
	s.mockGW.EXPECT().Commit(gomock.Any()).Return(false)

	err := s.engine.Approve(s.T().Context(), 8, 2)
	s.ErrorIs(err, domain.ErrWorkflowAborted)
}

func (s *EngineTestSuite) TestPanicInsideWorkflowRollsBack() {
	s.mockGW.EXPECT().Begin(gomock.Any()).Return(true)
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), cancelOrderByAdmin, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...any) bool { panic("connection lost") })
	s.mockGW.EXPECT().Rollback(gomock.Any()).Return(true)
	s.mockGW.EXPECT().Commit(gomock.Any()).Times(0)

	s.Panics(func() {
		_ = s.engine.CancelByAdmin(s.T().Context(), 7, 1)
	})
}
