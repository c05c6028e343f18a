package entity

import "github.com/google/uuid"

type Affirmation struct {
	ID       uuid.UUID `db:"id"`
	Category *string   `db:"category"`
	Text     string    `db:"text"`
}
