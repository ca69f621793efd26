package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrDocumentNotFound y ErrEmptyReport son condiciones esperadas del negocio:
// el caller las distingue con errors.Is, nunca se propagan como pánico.
var (
	ErrDocumentNotFound = errors.New("documento no encontrado")
	ErrMalformedInput   = errors.New("la lista de líneas del documento no es una secuencia")
	ErrEmptyReport      = errors.New("ninguna línea del documento resolvió a una categoría")
	ErrInvalidConfig    = errors.New("configuración inválida")
)
