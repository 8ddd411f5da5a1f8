// Package banco simulates a small bank: customers own checking accounts and
// move money through deposits and withdrawals. Everything lives in memory for
// the lifetime of the process.
package banco

import (
	"time"

	"github.com/shopspring/decimal"
)

type Options struct {
	Agency         string
	Limit          decimal.Decimal
	MaxWithdrawals int
	// Now defaults to time.Now.
	Now func() time.Time
}

type Bank struct {
	opts      Options
	customers []*Customer
	accounts  []*Account
}

func New(opts Options) *Bank {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Bank{opts: opts}
}

func (b *Bank) FindCustomer(cpf string) *Customer {
	cpf = NormalizeCPF(cpf)
	for _, c := range b.customers {
		if c.CPF == cpf {
			return c
		}
	}
	return nil
}

func (b *Bank) CreateCustomer(cpf, name, birthDate, address string) (*Customer, error) {
	if NormalizeCPF(cpf) == "" {
		return nil, ErrInvalidCPF
	}
	if b.FindCustomer(cpf) != nil {
		return nil, ErrDuplicateCPF
	}

	c := NewCustomer(name, cpf, birthDate, address)
	b.customers = append(b.customers, c)
	return c, nil
}

// CreateCheckingAccount opens the next sequential account for the customer
// identified by cpf.
func (b *Bank) CreateCheckingAccount(cpf string) (*Account, error) {
	c := b.FindCustomer(cpf)
	if c == nil {
		return nil, ErrCustomerNotFound
	}

	a := NewCheckingAccount(c, len(b.accounts)+1, b.opts.Agency, b.opts.Limit, b.opts.MaxWithdrawals)
	c.AddAccount(a)
	b.accounts = append(b.accounts, a)
	return a, nil
}

func (b *Bank) FindAccount(number int) (*Account, error) {
	for _, a := range b.accounts {
		if a.Number == number {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (b *Bank) Accounts() []*Account {
	out := make([]*Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

func (b *Bank) Deposit(number int, value decimal.Decimal) (*Account, error) {
	return b.perform(number, NewDeposit(value, b.opts.Now()))
}

func (b *Bank) Withdraw(number int, value decimal.Decimal) (*Account, error) {
	return b.perform(number, NewWithdrawal(value, b.opts.Now()))
}

func (b *Bank) perform(number int, t Transaction) (*Account, error) {
	a, err := b.FindAccount(number)
	if err != nil {
		return nil, err
	}
	if err := a.Customer.PerformTransaction(a, t); err != nil {
		return a, err
	}
	return a, nil
}
