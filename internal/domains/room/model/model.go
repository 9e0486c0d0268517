package model

import "innkeep/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldNumber   = "number"
	FieldType     = "type"
	FieldPrice    = "price"
	FieldCapacity = "capacity"
	FieldOccupied = "occupied"
)

const (
	TypeStandard     = "standard"
	TypeComfort      = "comfort"
	TypeLux          = "lux"
	TypeFamily       = "family"
	TypePresidential = "presidential"
)

type Room struct {
	ID       string  `db:"id"`
	Number   string  `db:"number"`
	Type     string  `db:"type"`
	Price    float64 `db:"price"`
	Capacity int     `db:"capacity"`
	Occupied bool    `db:"occupied"`
	model.Metadata
}
