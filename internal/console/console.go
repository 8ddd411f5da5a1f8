// Package console runs the interactive menu of the bank simulator.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/GCrispino/workout-api/internal/banco"
)

type Console struct {
	bank  *banco.Bank
	in    *bufio.Scanner
	out   io.Writer
	color *color.Color
	log   *logrus.Logger
}

// New builds a console reading commands from in and writing to out. Colors
// are only emitted when out is a terminal.
func New(bank *banco.Bank, in io.Reader, out io.Writer, log *logrus.Logger) *Console {
	c := color.New()
	c.SetOutput(out)

	return &Console{
		bank:  bank,
		in:    bufio.NewScanner(in),
		out:   out,
		color: c,
		log:   log,
	}
}

// Run loops over the menu until the user quits or the input ends.
func (c *Console) Run() error {
	for {
		opt, ok := c.prompt(menuText)
		if !ok {
			break
		}

		switch opt {
		case "d":
			c.deposit()
		case "s":
			c.withdraw()
		case "e":
			c.statement()
		case "nu":
			c.createCustomer()
		case "nc":
			c.createAccount()
		case "lc":
			c.listAccounts()
		case "q":
			c.println("\nObrigado por utilizar nosso sistema. Até logo!")
			return nil
		default:
			c.println("\nOperação inválida, por favor selecione novamente a operação desejada.")
		}
	}

	if err := c.in.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}

func (c *Console) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) success(msg string) {
	c.println("\n" + c.color.Green("=== "+msg+" ==="))
}

func (c *Console) failure(msg string) {
	c.println("\n" + c.color.Red("@@@ "+msg+" @@@"))
}

func parseValue(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}

// promptAccount asks for an account number and resolves it; failures are
// reported and ok is false.
func (c *Console) promptAccount() (*banco.Account, bool) {
	raw, ok := c.prompt("Informe o número da conta: ")
	if !ok {
		return nil, false
	}
	number, err := strconv.Atoi(raw)
	if err != nil {
		c.failure("Número de conta inválido.")
		return nil, false
	}

	a, err := c.bank.FindAccount(number)
	if err != nil {
		c.failure(err.Error())
		return nil, false
	}
	return a, true
}

func (c *Console) promptValue(text string) (decimal.Decimal, bool) {
	raw, ok := c.prompt(text)
	if !ok {
		return decimal.Zero, false
	}
	v, err := parseValue(raw)
	if err != nil {
		c.failure("Valor inválido.")
		return decimal.Zero, false
	}
	return v, true
}

func (c *Console) deposit() {
	a, ok := c.promptAccount()
	if !ok {
		return
	}
	value, ok := c.promptValue("Informe o valor do depósito: ")
	if !ok {
		return
	}

	if _, err := c.bank.Deposit(a.Number, value); err != nil {
		c.log.WithError(err).WithField("conta", a.Number).Info("deposit rejected")
		c.failure("Operação falhou! " + err.Error())
		return
	}
	c.log.WithFields(logrus.Fields{"conta": a.Number, "valor": value.StringFixed(2)}).Debug("deposit applied")
	c.success("Depósito realizado com sucesso!")
}

func (c *Console) withdraw() {
	a, ok := c.promptAccount()
	if !ok {
		return
	}
	value, ok := c.promptValue("Informe o valor do saque: ")
	if !ok {
		return
	}

	if _, err := c.bank.Withdraw(a.Number, value); err != nil {
		c.log.WithError(err).WithField("conta", a.Number).Info("withdrawal rejected")
		c.failure("Operação falhou! " + err.Error())
		return
	}
	c.log.WithFields(logrus.Fields{"conta": a.Number, "valor": value.StringFixed(2)}).Debug("withdrawal applied")
	c.success("Saque realizado com sucesso!")
}

func (c *Console) statement() {
	a, ok := c.promptAccount()
	if !ok {
		return
	}
	fmt.Fprint(c.out, renderStatement(a))
}

func (c *Console) createCustomer() {
	cpf, ok := c.prompt("Informe o CPF (somente números): ")
	if !ok {
		return
	}
	if banco.NormalizeCPF(cpf) == "" {
		c.failure(banco.ErrInvalidCPF.Error())
		return
	}
	if c.bank.FindCustomer(cpf) != nil {
		c.failure(banco.ErrDuplicateCPF.Error())
		return
	}

	name, ok := c.prompt("Informe o nome completo: ")
	if !ok {
		return
	}
	birthDate, ok := c.prompt("Informe a data de nascimento (dd-mm-aaaa): ")
	if !ok {
		return
	}
	address, ok := c.prompt("Informe o endereço (logradouro, nro - bairro - cidade/sigla estado): ")
	if !ok {
		return
	}

	customer, err := c.bank.CreateCustomer(cpf, name, birthDate, address)
	if err != nil {
		c.failure(err.Error())
		return
	}
	c.log.WithField("cpf", customer.CPF).Debug("customer created")
	c.success("Usuário criado com sucesso!")
}

func (c *Console) createAccount() {
	cpf, ok := c.prompt("Informe o CPF do usuário para vincular a conta: ")
	if !ok {
		return
	}

	a, err := c.bank.CreateCheckingAccount(cpf)
	if err != nil {
		c.failure(err.Error() + " Não foi possível criar a conta.")
		return
	}
	c.log.WithFields(logrus.Fields{"conta": a.Number, "agencia": a.Agency}).Debug("account created")
	c.success("Conta criada com sucesso!")
}

func (c *Console) listAccounts() {
	accounts := c.bank.Accounts()
	if len(accounts) == 0 {
		c.failure("Nenhuma conta cadastrada.")
		return
	}

	c.println("\n================ LISTA DE CONTAS ================")
	for _, a := range accounts {
		fmt.Fprint(c.out, renderAccount(a))
	}
	c.println("=================================================")
}
