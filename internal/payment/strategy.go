package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=strategy.go -destination=mocks/mocks.go -package=mocks

type Method string

const (
	MethodCard         Method = "credit_card"
	MethodWallet       Method = "wallet"
	MethodBankTransfer Method = "bank_transfer"
)

var ErrUnknownMethod = errors.New("unknown payment method")

func (m Method) IsValid() bool {
	switch m {
	case MethodCard, MethodWallet, MethodBankTransfer:
		return true
	default:
		return false
	}
}

// Strategy способ списания суммы. false означает отказ, заказ в этом случае оплаченным не считается.
type Strategy interface {
	Pay(ctx context.Context, amount decimal.Decimal) bool
	Name() string
	Method() Method
}

// describer стратегии, умеющие отдать свои реквизиты для логов.
type describer interface {
	LogFields() logrus.Fields
}

// Details реквизиты плательщика. Какие поля обязательны, зависит от способа оплаты.
type Details struct {
	CardNumber string
	CardHolder string
	CardExpiry string
	WalletID   string
	WalletType string
	Phone      string
	Bank       string
}

// NewStrategy собирает стратегию по названию способа оплаты.
func NewStrategy(method Method, d Details) (Strategy, error) {
	switch method {
	case MethodCard:
		if d.CardNumber == "" || d.CardHolder == "" || d.CardExpiry == "" {
			return nil, fmt.Errorf("%w: card number, holder and expiry are required", domain.ErrInvalidArgument)
		}
		return &Card{Number: d.CardNumber, Holder: d.CardHolder, Expiry: d.CardExpiry}, nil
	case MethodWallet:
		if d.WalletID == "" || d.WalletType == "" {
			return nil, fmt.Errorf("%w: wallet id and type are required", domain.ErrInvalidArgument)
		}
		return &Wallet{ID: d.WalletID, Type: d.WalletType}, nil
	case MethodBankTransfer:
		if d.Phone == "" || d.Bank == "" {
			return nil, fmt.Errorf("%w: phone and bank are required", domain.ErrInvalidArgument)
		}
		return &BankTransfer{Phone: d.Phone, Bank: d.Bank}, nil
	default:
		return nil, fmt.Errorf("%w: `%s`", ErrUnknownMethod, method)
	}
}

// Card оплата банковской картой. Списание симулируется и всегда успешно.
type Card struct {
	Number string
	Holder string
	Expiry string
}

func (c *Card) Pay(_ context.Context, _ decimal.Decimal) bool {
	return true
}

func (c *Card) Name() string {
	return "Bank card"
}

func (c *Card) Method() Method {
	return MethodCard
}

// MaskedNumber номер карты, в котором видны только последние 4 цифры.
func (c *Card) MaskedNumber() string {
	const visible = 4
	if len(c.Number) <= visible {
		return strings.Repeat("*", len(c.Number))
	}
	return "**** **** **** " + c.Number[len(c.Number)-visible:]
}

func (c *Card) LogFields() logrus.Fields {
	return logrus.Fields{
		"card":   c.MaskedNumber(),
		"holder": c.Holder,
		"expiry": c.Expiry,
	}
}

// Wallet оплата электронным кошельком.
type Wallet struct {
	ID   string
	Type string
}

func (w *Wallet) Pay(_ context.Context, _ decimal.Decimal) bool {
	return true
}

func (w *Wallet) Name() string {
	return fmt.Sprintf("E-wallet (%s)", w.Type)
}

func (w *Wallet) Method() Method {
	return MethodWallet
}

func (w *Wallet) LogFields() logrus.Fields {
	return logrus.Fields{"wallet_id": w.ID, "wallet_type": w.Type}
}

// BankTransfer перевод по номеру телефона через банк плательщика.
type BankTransfer struct {
	Phone string
	Bank  string
}

func (b *BankTransfer) Pay(_ context.Context, _ decimal.Decimal) bool {
	return true
}

func (b *BankTransfer) Name() string {
	return fmt.Sprintf("Bank transfer (%s)", b.Bank)
}

func (b *BankTransfer) Method() Method {
	return MethodBankTransfer
}

func (b *BankTransfer) LogFields() logrus.Fields {
	return logrus.Fields{"phone": b.Phone, "bank": b.Bank}
}
