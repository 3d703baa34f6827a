package entity

import "time"

// Activity es una entrada del log de auditoría (append-only, más reciente
// primero). Icon es una pista de render para la UI; el core solo la acarrea.
type Activity struct {
	ID          string
	Type        string
	Description string
	Date        time.Time
	User        string
	Icon        string
}
