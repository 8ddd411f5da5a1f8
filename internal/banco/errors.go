package banco

import "errors"

// Business rule violations. Messages are shown to the console user as-is.
var (
	ErrInvalidDeposit    = errors.New("Valor de depósito inválido.")
	ErrInvalidWithdrawal = errors.New("Valor de saque inválido.")
	ErrInsufficientFunds = errors.New("Saldo insuficiente.")
	ErrLimitExceeded     = errors.New("Valor excede o limite por saque.")
	ErrMaxWithdrawals    = errors.New("Número máximo de saques excedido.")
	ErrNotOwner          = errors.New("Conta não pertence a este cliente.")

	ErrDuplicateCPF     = errors.New("Já existe usuário com esse CPF!")
	ErrInvalidCPF       = errors.New("CPF inválido.")
	ErrCustomerNotFound = errors.New("Usuário não encontrado.")
	ErrAccountNotFound  = errors.New("Conta não encontrada.")
)
