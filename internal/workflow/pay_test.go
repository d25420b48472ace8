package workflow

import (
	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/payment"
	paymocks "github.com/fsdevblog/orderflow/internal/payment/mocks"
	"github.com/fsdevblog/orderflow/pkg/store"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *EngineTestSuite) TestPay_Wallet() {
	s.expectCommitted()
	gomock.InOrder(
		s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(9)).
			Return(store.Rows{{"5", "pending", "49.99"}}),
		s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), markOrderPaid, int64(9), "wallet").Return(true),
		s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry,
			"order", int64(9), "update", int64(5), gomock.Any()).Return(true),
	)

	strategy, err := payment.NewStrategy(payment.MethodWallet, payment.Details{WalletID: "w-77", WalletType: "YooMoney"})
	s.Require().NoError(err)

	trx, err := s.engine.Pay(s.T().Context(), 9, 5, strategy)
	s.Require().NoError(err)
	s.Regexp(`^TRX-\d+-\d{4}$`, trx)
}

func (s *EngineTestSuite) TestPay_DeclinedLeavesOrderPending() {
	strategy := paymocks.NewMockStrategy(s.mockCtrl)
	strategy.EXPECT().Method().Return(payment.MethodCard).AnyTimes()
	strategy.EXPECT().Name().Return("Bank card").AnyTimes()
	strategy.EXPECT().Pay(gomock.Any(), decimal.RequireFromString("49.99")).Return(false)

	s.expectRolledBack()
	s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(9)).
		Return(store.Rows{{"5", "pending", "49.99"}})
	s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	trx, err := s.engine.Pay(s.T().Context(), 9, 5, strategy)
	s.ErrorIs(err, domain.ErrPaymentDeclined)
	s.Empty(trx)
}

func (s *EngineTestSuite) TestPay_WithoutStrategy() {
	s.expectNoTransaction()
	s.mockGW.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.engine.Pay(s.T().Context(), 9, 5, nil)
	s.ErrorIs(err, domain.ErrPrecondition)
}

func (s *EngineTestSuite) TestPay_ForeignOrNotPending() {
	strategy := paymocks.NewMockStrategy(s.mockCtrl)
	strategy.EXPECT().Pay(gomock.Any(), gomock.Any()).Times(0)

	tests := []struct {
		name       string
		customerID int64
		row        store.Row
	}{
		{name: "foreign order", customerID: 6, row: store.Row{"5", "pending", "49.99"}},
		{name: "already completed", customerID: 5, row: store.Row{"5", "completed", "49.99"}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockGW.EXPECT().Begin(gomock.Any()).Return(true)
			s.mockGW.EXPECT().Rollback(gomock.Any()).Return(true)
			s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(9)).Return(store.Rows{tt.row})

			_, err := s.engine.Pay(s.T().Context(), 9, tt.customerID, strategy)
			s.ErrorIs(err, domain.ErrPrecondition)
		})
	}
}

func (s *EngineTestSuite) TestPay_LaterStepFailureRollsBack() {
	tests := []struct {
		name      string
		markPaid  bool
		auditCall bool
	}{
		{name: "mark paid", markPaid: false},
		{name: "audit after charge", markPaid: true, auditCall: true},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			strategy := paymocks.NewMockStrategy(s.mockCtrl)
			strategy.EXPECT().Method().Return(payment.MethodCard).AnyTimes()
			strategy.EXPECT().Name().Return("Bank card").AnyTimes()
			strategy.EXPECT().Pay(gomock.Any(), decimal.RequireFromString("49.99")).Return(true)

			s.expectRolledBack()
			s.mockGW.EXPECT().Query(gomock.Any(), selectOrderForUpdate, int64(9)).
				Return(store.Rows{{"5", "pending", "49.99"}})
			s.mockGW.EXPECT().ExecuteAffecting(gomock.Any(), markOrderPaid, int64(9), "credit_card").Return(tt.markPaid)
			if tt.auditCall {
				s.mockGW.EXPECT().Execute(gomock.Any(), insertAuditEntry, gomock.Any()).Return(false)
			} else {
				s.mockGW.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			trx, err := s.engine.Pay(s.T().Context(), 9, 5, strategy)
			s.ErrorIs(err, domain.ErrWorkflowAborted)
			s.Empty(trx)
		})
	}
}
