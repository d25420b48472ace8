package store_test

import (
	"errors"
	"github.com/fsdevblog/orderflow/pkg/store"
	"io"
	"testing"

	"github.com/fsdevblog/orderflow/pkg/store/mocks"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type GatewayTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockConn *mocks.MockConn
	mockTx   *mocks.MockTx
	gateway  *store.Gateway
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockConn = mocks.NewMockConn(s.mockCtrl)
	s.mockTx = mocks.NewMockTx(s.mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)
	s.gateway = store.NewGateway(s.mockConn, l)
}

func (s *GatewayTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *GatewayTestSuite) resultSet(rows ...[]string) *mocks.MockResultSet {
	rs := mocks.NewMockResultSet(s.mockCtrl)
	calls := make([]*gomock.Call, 0, len(rows)+1)
	for _, row := range rows {
		raw := make([][]byte, len(row))
		for i, v := range row {
			raw[i] = []byte(v)
		}
		calls = append(calls,
			rs.EXPECT().Next().Return(true),
			rs.EXPECT().RawValues().Return(raw),
		)
	}
	calls = append(calls, rs.EXPECT().Next().Return(false))
	gomock.InOrder(calls...)
	return rs
}

func (s *GatewayTestSuite) TestQuery_ConvertsRowsToText() {
	rs := s.resultSet([]string{"1", "Laptop", "999.99"}, []string{"2", "Mouse", "25.00"})
	rs.EXPECT().Err().Return(nil)
	rs.EXPECT().Close()

	s.mockConn.EXPECT().
		Query(gomock.Any(), "SELECT product_id, name, price FROM products", gomock.Any()).
		Return(rs, nil)

	rows := s.gateway.Query(s.T().Context(), "SELECT product_id, name, price FROM products")
	s.Require().Len(rows, 2)
	s.Equal(store.Row{"1", "Laptop", "999.99"}, rows[0])
	s.Equal("Mouse", rows[1].String(1))
}

func (s *GatewayTestSuite) TestQuery_ErrorReturnsEmptyResult() {
	s.mockConn.EXPECT().
		Query(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("relation does not exist"))

	rows := s.gateway.Query(s.T().Context(), "SELECT * FROM missing")
	s.NotNil(rows)
	s.Empty(rows)
}

func (s *GatewayTestSuite) TestQuery_RowsErrorDiscardsPartialResult() {
	rs := s.resultSet([]string{"1"})
	rs.EXPECT().Err().Return(errors.New("connection reset"))
	rs.EXPECT().Close()

	s.mockConn.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(rs, nil)

	s.Empty(s.gateway.Query(s.T().Context(), "SELECT 1"))
}

func (s *GatewayTestSuite) TestExecute() {
	s.mockConn.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgconn.NewCommandTag("UPDATE 1"), nil)
	s.True(s.gateway.Execute(s.T().Context(), "UPDATE products SET price = $1", "10.00"))

	s.mockConn.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgconn.CommandTag{}, errors.New("syntax error"))
	s.False(s.gateway.Execute(s.T().Context(), "UPDATE"))
}

func (s *GatewayTestSuite) TestExecuteAffecting_NoRowsIsFailure() {
	s.mockConn.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgconn.NewCommandTag("UPDATE 0"), nil)
	s.False(s.gateway.ExecuteAffecting(s.T().Context(), "UPDATE orders SET status = 'canceled' WHERE order_id = $1", 42))

	s.mockConn.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgconn.NewCommandTag("DELETE 3"), nil)
	s.True(s.gateway.ExecuteAffecting(s.T().Context(), "DELETE FROM order_items WHERE order_id = $1", 42))
}

func (s *GatewayTestSuite) TestBegin_SecondCallIsNoop() {
	s.mockConn.EXPECT().Begin(gomock.Any()).Return(s.mockTx, nil).Times(1)

	s.True(s.gateway.Begin(s.T().Context()))
	s.True(s.gateway.Begin(s.T().Context()))
	s.True(s.gateway.InTransaction())
}

func (s *GatewayTestSuite) TestBegin_Failure() {
	s.mockConn.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("too many connections"))

	s.False(s.gateway.Begin(s.T().Context()))
	s.False(s.gateway.InTransaction())
}

func (s *GatewayTestSuite) TestStatementsRunInsideOpenTransaction() {
	s.mockConn.EXPECT().Begin(gomock.Any()).Return(s.mockTx, nil)
	s.mockTx.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgconn.NewCommandTag("INSERT 0 1"), nil)
	s.mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
	// соединение напрямую не используется, пока транзакция открыта
	s.mockConn.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.Require().True(s.gateway.Begin(s.T().Context()))
	s.True(s.gateway.Execute(s.T().Context(), "INSERT INTO audit_log DEFAULT VALUES"))
	s.True(s.gateway.Commit(s.T().Context()))
	s.False(s.gateway.InTransaction())
}

func (s *GatewayTestSuite) TestCommitAndRollbackWithoutTransaction() {
	s.False(s.gateway.Commit(s.T().Context()))
	s.False(s.gateway.Rollback(s.T().Context()))
}

func (s *GatewayTestSuite) TestCommit_FailureClearsTransaction() {
	s.mockConn.EXPECT().Begin(gomock.Any()).Return(s.mockTx, nil)
	s.mockTx.EXPECT().Commit(gomock.Any()).Return(errors.New("serialization failure"))

	s.Require().True(s.gateway.Begin(s.T().Context()))
	s.False(s.gateway.Commit(s.T().Context()))
	s.False(s.gateway.InTransaction())
}

func (s *GatewayTestSuite) TestRollback_ClosedTxIsSuccess() {
	s.mockConn.EXPECT().Begin(gomock.Any()).Return(s.mockTx, nil)
	s.mockTx.EXPECT().Rollback(gomock.Any()).Return(pgx.ErrTxClosed)

	s.Require().True(s.gateway.Begin(s.T().Context()))
	s.True(s.gateway.Rollback(s.T().Context()))
	s.False(s.gateway.InTransaction())
}

func (s *GatewayTestSuite) TestClose_RollsBackOpenTransaction() {
	s.mockConn.EXPECT().Begin(gomock.Any()).Return(s.mockTx, nil)
	s.mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	s.Require().True(s.gateway.Begin(s.T().Context()))
	s.gateway.Close(s.T().Context())
	s.False(s.gateway.InTransaction())
}

func (s *GatewayTestSuite) TestClose_WithoutTransaction() {
	s.gateway.Close(s.T().Context())
	s.False(s.gateway.InTransaction())
}
