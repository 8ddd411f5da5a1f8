package banco

import "strings"

type Customer struct {
	Name      string
	Address   string
	CPF       string
	BirthDate string
	Accounts  []*Account
}

func NewCustomer(name, cpf, birthDate, address string) *Customer {
	return &Customer{
		Name:      name,
		Address:   address,
		CPF:       NormalizeCPF(cpf),
		BirthDate: birthDate,
	}
}

func (c *Customer) AddAccount(a *Account) {
	c.Accounts = append(c.Accounts, a)
}

func (c *Customer) owns(a *Account) bool {
	for _, owned := range c.Accounts {
		if owned == a {
			return true
		}
	}
	return false
}

// PerformTransaction applies t to a if a is one of the customer's accounts.
func (c *Customer) PerformTransaction(a *Account, t Transaction) error {
	if !c.owns(a) {
		return ErrNotOwner
	}
	return t.Register(a)
}

// NormalizeCPF drops every non-digit character.
func NormalizeCPF(cpf string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cpf)
}
