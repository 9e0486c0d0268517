package model

import "innkeep/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID       = "id"
	FieldPassport = "passport"
	FieldEmail    = "email"
	FieldLastName = "last_name"
)

type Guest struct {
	ID string `db:"id"`
	model.Contact
	Passport string `db:"passport"`
	model.Metadata
}
