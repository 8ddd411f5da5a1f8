package banco

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind int

const (
	KindDeposit TransactionKind = iota
	KindWithdrawal
)

func (k TransactionKind) String() string {
	switch k {
	case KindDeposit:
		return "Depósito"
	case KindWithdrawal:
		return "Saque"
	default:
		return fmt.Sprintf("TransactionKind(%d)", int(k))
	}
}

type Transaction struct {
	Kind  TransactionKind
	Value decimal.Decimal
	Date  time.Time
}

func NewDeposit(value decimal.Decimal, date time.Time) Transaction {
	return Transaction{Kind: KindDeposit, Value: value, Date: date}
}

func NewWithdrawal(value decimal.Decimal, date time.Time) Transaction {
	return Transaction{Kind: KindWithdrawal, Value: value, Date: date}
}

func (t Transaction) Description() string {
	return fmt.Sprintf("%s: R$ %s", t.Kind, t.Value.StringFixed(2))
}

// Register validates t against the account and applies it. On error the
// account is left untouched.
func (t Transaction) Register(a *Account) error {
	switch t.Kind {
	case KindDeposit:
		return t.deposit(a)
	case KindWithdrawal:
		return t.withdraw(a)
	default:
		return fmt.Errorf("tipo de transação desconhecido: %s", t.Kind)
	}
}

func (t Transaction) deposit(a *Account) error {
	if !t.Value.IsPositive() {
		return ErrInvalidDeposit
	}

	a.Balance = a.Balance.Add(t.Value)
	a.History.Add(t.Date, t.Description())
	return nil
}

func (t Transaction) withdraw(a *Account) error {
	if !t.Value.IsPositive() {
		return ErrInvalidWithdrawal
	}
	if t.Value.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	if a.Kind == KindChecking {
		if t.Value.GreaterThan(a.Limit) {
			return ErrLimitExceeded
		}
		if a.Withdrawals >= a.MaxWithdrawals {
			return ErrMaxWithdrawals
		}
	}

	a.Balance = a.Balance.Sub(t.Value)
	if a.Kind == KindChecking {
		a.Withdrawals++
	}
	a.History.Add(t.Date, t.Description())
	return nil
}
