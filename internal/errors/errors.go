package errors

import "fmt"

var ErrDuplicateCPF = fmt.Errorf("Já existe um atleta cadastrado com o CPF")
var ErrDuplicateCategory = fmt.Errorf("A categoria informada já está cadastrada.")
var ErrDuplicateTrainingCenter = fmt.Errorf("O centro de treinamento informado já está cadastrado.")

var ErrIntegrity = fmt.Errorf("Erro de integridade no banco de dados.")
var ErrCategoryNotFound = fmt.Errorf("categoria não encontrada")
var ErrTrainingCenterNotFound = fmt.Errorf("centro de treinamento não encontrado")

// ErrValidation is wrapped by every field-level validation failure.
var ErrValidation = fmt.Errorf("dados inválidos")

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
