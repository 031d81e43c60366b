package dto

// Envelope es el sobre de respuesta del API, conservado por compatibilidad
// con los consumidores del catálogo: {success, data?, error?}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK envuelve una respuesta exitosa.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail envuelve un error orientado al cliente.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

// Pagination metadatos de página en los listados.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}
