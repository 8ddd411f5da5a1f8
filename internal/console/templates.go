package console

import (
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/GCrispino/workout-api/internal/banco"
)

const menuText = `
================ MENU ================
[d]	Depositar
[s]	Sacar
[e]	Extrato
[nc]	Nova conta
[lc]	Listar contas
[nu]	Novo usuário
[q]	Sair
=> `

var accountTemplate = fasttemplate.New(`------------------------------------------------------------
Agência:	${agencia}
C/C:		${numero}
Titular:	${titular}
Saldo:		R$ ${saldo}
`, "${", "}")

var checkingTemplate = fasttemplate.New(`Limite por saque:	R$ ${limite}
Saques realizados:	${saques}/${limite_saques}
`, "${", "}")

var entryTemplate = fasttemplate.New("${data} - ${descricao}\n", "${", "}")

var statementTemplate = fasttemplate.New(`
================ EXTRATO ================
${historico}
Saldo:		R$ ${saldo}
==========================================
`, "${", "}")

func renderAccount(a *banco.Account) string {
	out := accountTemplate.ExecuteString(map[string]interface{}{
		"agencia": a.Agency,
		"numero":  strconv.Itoa(a.Number),
		"titular": a.Customer.Name,
		"saldo":   a.Balance.StringFixed(2),
	})
	if a.Kind == banco.KindChecking {
		out += checkingTemplate.ExecuteString(map[string]interface{}{
			"limite":        a.Limit.StringFixed(2),
			"saques":        strconv.Itoa(a.Withdrawals),
			"limite_saques": strconv.Itoa(a.MaxWithdrawals),
		})
	}
	return out
}

func renderHistory(h *banco.History) string {
	entries := h.Entries()
	if len(entries) == 0 {
		return banco.EmptyHistory + "\n"
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(entryTemplate.ExecuteString(map[string]interface{}{
			"data":      e.Date.Format(banco.HistoryTimeLayout),
			"descricao": e.Description,
		}))
	}
	return b.String()
}

func renderStatement(a *banco.Account) string {
	return statementTemplate.ExecuteString(map[string]interface{}{
		"historico": renderHistory(a.History),
		"saldo":     a.Balance.StringFixed(2),
	})
}
