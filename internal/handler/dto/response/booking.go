package response

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID  `json:"id"`
	RoomType    string     `json:"roomType"`
	RoomName    string     `json:"roomName"`
	CheckIn     time.Time  `json:"checkIn"`
	CheckOut    time.Time  `json:"checkOut"`
	Guests      int        `json:"guests"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Nights      int        `json:"nights"`
	TotalPrice  float64    `json:"totalPrice"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.Copy(res, v)
	res.RoomType = v.RoomTypeID
	res.TotalPrice = centsToMajor(v.TotalPriceCents)
	return res
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = FromBookingView(it)
	}
	return res
}

// FromBooking renders a freshly written booking without a read-back.
func FromBooking(b *booking.Booking) *BookingResponse {
	contact := b.Contact()
	return &BookingResponse{
		ID:          b.ID(),
		RoomType:    b.RoomTypeID(),
		RoomName:    b.RoomName(),
		CheckIn:     b.Stay().Start(),
		CheckOut:    b.Stay().End(),
		Guests:      b.Guests(),
		FullName:    contact.FullName,
		Email:       contact.Email,
		Phone:       contact.Phone,
		Nights:      b.Nights(),
		TotalPrice:  centsToMajor(b.TotalPriceCents()),
		Status:      b.Status().String(),
		CreatedAt:   b.CreatedAt(),
		CancelledAt: b.CancelledAt(),
	}
}
