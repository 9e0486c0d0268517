package dto

import (
	"innkeep/internal/domains/room/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number   string  `json:"number"   validate:"required,roomnumber"`
	Type     string  `json:"type"     validate:"required,oneof=standard comfort lux family presidential"`
	Price    float64 `json:"price"    validate:"required,gt=0,lte=1000000"`
	Capacity int     `json:"capacity" validate:"required,gte=1,lte=5"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:       uuid.NewString(),
		Number:   c.Number,
		Type:     c.Type,
		Price:    c.Price,
		Capacity: c.Capacity,
		Occupied: false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Type     string   `db:"type"     json:"type"     validate:"omitempty,oneof=standard comfort lux family presidential"`
	Price    *float64 `db:"price"    json:"price"    validate:"omitempty,gt=0,lte=1000000"`
	Capacity *int     `db:"capacity" json:"capacity" validate:"omitempty,gte=1,lte=5"`
}

type SetOccupiedRequest struct {
	Occupied *bool `json:"occupied" validate:"required"`
}

type RoomResponse struct {
	ID       string  `json:"id"`
	Number   string  `json:"number"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
	Occupied bool    `json:"occupied"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Occupied = model.Occupied
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
