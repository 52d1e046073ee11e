package domain

// ValidationError carrega mensagens de erro por campo, propagadas até a API
// como detalhes de uma resposta 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid request data"
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add registra a mensagem do campo e retorna o próprio erro para encadeamento.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = message
	return e
}

// HasErrors indica se alguma mensagem foi registrada.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
