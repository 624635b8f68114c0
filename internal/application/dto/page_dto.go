package dto

import "github.com/jhoicas/sgi-guatemart/internal/domain"

// PageInfo alias de la paginación de dominio para las respuestas.
type PageInfo = domain.PageInfo
