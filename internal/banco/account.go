package banco

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	HistoryTimeLayout = "2006-01-02 15:04:05"
	EmptyHistory      = "Não foram realizadas movimentações."
)

type HistoryEntry struct {
	Date        time.Time
	Description string
}

// History is the append-only log of an account's applied transactions.
type History struct {
	entries []HistoryEntry
}

func (h *History) Add(date time.Time, description string) {
	h.entries = append(h.entries, HistoryEntry{Date: date, Description: description})
}

func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) String() string {
	if len(h.entries) == 0 {
		return EmptyHistory
	}

	lines := make([]string, len(h.entries))
	for i, e := range h.entries {
		lines[i] = e.Date.Format(HistoryTimeLayout) + " - " + e.Description
	}
	return strings.Join(lines, "\n")
}

type AccountKind int

const (
	KindBasic AccountKind = iota
	KindChecking
)

type Account struct {
	Agency   string
	Number   int
	Customer *Customer
	Balance  decimal.Decimal
	History  *History
	Kind     AccountKind

	// checking accounts only
	Limit          decimal.Decimal
	MaxWithdrawals int
	Withdrawals    int
}

func NewAccount(customer *Customer, number int, agency string) *Account {
	return &Account{
		Agency:   agency,
		Number:   number,
		Customer: customer,
		Balance:  decimal.Zero,
		History:  &History{},
		Kind:     KindBasic,
	}
}

func NewCheckingAccount(customer *Customer, number int, agency string, limit decimal.Decimal, maxWithdrawals int) *Account {
	a := NewAccount(customer, number, agency)
	a.Kind = KindChecking
	a.Limit = limit
	a.MaxWithdrawals = maxWithdrawals
	return a
}
