package response

import (
	"time"

	"hotel-booking/internal/domain/block"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BlockResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    string    `json:"roomId"`
	RoomType  string    `json:"roomType"`
	RoomName  string    `json:"roomName"`
	RoomUnit  string    `json:"roomUnit"`
	CheckIn   time.Time `json:"checkIn"`
	CheckOut  time.Time `json:"checkOut"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBlockView(v *queries.BlockView) *BlockResponse {
	res := &BlockResponse{}
	_ = copier.Copy(res, v)
	res.RoomType = v.RoomTypeID
	return res
}

func FromBlockList(items []*queries.BlockView) []*BlockResponse {
	res := make([]*BlockResponse, len(items))
	for i, it := range items {
		res[i] = FromBlockView(it)
	}
	return res
}

func FromBlock(b *block.BlockedBooking) *BlockResponse {
	return &BlockResponse{
		ID:        b.ID(),
		RoomID:    b.RoomID(),
		RoomType:  b.RoomTypeID(),
		RoomName:  b.RoomName(),
		RoomUnit:  b.RoomUnit(),
		CheckIn:   b.Stay().Start(),
		CheckOut:  b.Stay().End(),
		Reason:    b.Reason(),
		CreatedAt: b.CreatedAt(),
	}
}
