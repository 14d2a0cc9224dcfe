package entity

import "time"

// Categoria agrupa produtos do estoque. Nome é único.
type Categoria struct {
	ID        int64
	Nome      string
	CreatedAt time.Time
}
