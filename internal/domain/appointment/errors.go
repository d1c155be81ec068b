package appointment

import "errors"

// ===============================
// Taxonomia de erros do core
// ===============================
//
// Tudo que sai do repositório ou dos use cases cai em uma destas
// categorias; o handler nunca enxerga erro cru de storage.

// ErrSlotTaken: o intervalo foi consumido entre a geração e o commit.
// Recuperável — o cliente deve regenerar os horários e escolher outro.
var ErrSlotTaken = errors.New("slot_taken")

// ValidationError: entrada malformada, rejeitada antes de tocar o store.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return ValidationError{Code: code, Message: message}
}

func IsValidation(err error, code string) bool {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}

// NotFoundError: id desconhecido — fatal para a requisição, sem retry.
type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return e.Entity + "_not_found"
}

func ErrNotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// TransientError: timeout ou falha de conectividade do store.
// Seguro repetir a operação inteira; nunca assume sucesso parcial.
type TransientError struct {
	Err error
}

func (e TransientError) Error() string {
	return "transient_store_error: " + e.Err.Error()
}

func (e TransientError) Unwrap() error {
	return e.Err
}

func ErrTransient(err error) error {
	return TransientError{Err: err}
}

func IsTransient(err error) bool {
	var te TransientError
	return errors.As(err, &te)
}
