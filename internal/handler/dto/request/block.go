package request

import (
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/usecase/commands"
)

type CreateBlockRequest struct {
	RoomID   string  `json:"roomId" binding:"required,max=100"`
	RoomType string  `json:"roomType" binding:"required,roomslug"`
	RoomName string  `json:"roomName" binding:"omitempty,max=200"`
	RoomUnit string  `json:"roomUnit" binding:"required,max=50"`
	CheckIn  string  `json:"checkIn" binding:"required"`
	CheckOut string  `json:"checkOut" binding:"required"`
	Reason   *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

func (r CreateBlockRequest) ToCommand() (commands.CreateBlockRequest, error) {
	stay, err := period.ParseRange(r.CheckIn, r.CheckOut)
	if err != nil {
		return commands.CreateBlockRequest{}, err
	}
	return commands.CreateBlockRequest{
		RoomID:     r.RoomID,
		RoomTypeID: r.RoomType,
		RoomName:   r.RoomName,
		RoomUnit:   r.RoomUnit,
		Stay:       stay,
		Reason:     r.Reason,
	}, nil
}
