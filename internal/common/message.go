package common

// User-facing messages returned by every transport.
const (
	MessageUserNotFound  = "Usuario no encontrado"
	MessageInvalidInput  = "Nombre y edad son obligatorios"
	MessageAlreadyExists = "Usuario ya existe"
	MessageUserDeleted   = "Usuario eliminado"
	MessageInvalidID     = "Identificador inválido"
	MessageInvalidBody   = "Cuerpo JSON inválido"
	MessageBodyTooLarge  = "Cuerpo demasiado grande"
	MessageInternal      = "Error interno"
)
