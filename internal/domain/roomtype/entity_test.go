//go:build unit

package roomtype_test

import (
	"testing"

	"hotel-booking/internal/domain/roomtype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() roomtype.Params {
	return roomtype.Params{
		ID:         "double-1",
		Name:       "Double Room",
		TotalUnits: 5,
		PriceCents: 19900,
		MaxGuests:  2,
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*roomtype.Params)
		errIs  error
	}{
		{name: "valid", mutate: func(*roomtype.Params) {}},
		{name: "uppercase id", mutate: func(p *roomtype.Params) { p.ID = "Double-1" }, errIs: roomtype.ErrInvalidID},
		{name: "id with spaces", mutate: func(p *roomtype.Params) { p.ID = "double 1" }, errIs: roomtype.ErrInvalidID},
		{name: "empty name", mutate: func(p *roomtype.Params) { p.Name = "" }, errIs: roomtype.ErrInvalidName},
		{name: "zero units", mutate: func(p *roomtype.Params) { p.TotalUnits = 0 }, errIs: roomtype.ErrInvalidTotalUnits},
		{name: "negative price", mutate: func(p *roomtype.Params) { p.PriceCents = -1 }, errIs: roomtype.ErrNegativePrice},
		{name: "free room", mutate: func(p *roomtype.Params) { p.PriceCents = 0 }},
		{name: "zero max guests", mutate: func(p *roomtype.Params) { p.MaxGuests = 0 }, errIs: roomtype.ErrInvalidMaxGuests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)

			rt, err := roomtype.New(params)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, rt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, params.ID, rt.ID())
			assert.NotNil(t, rt.Amenities())
		})
	}
}

func TestValidateGuests(t *testing.T) {
	rt, err := roomtype.New(validParams())
	require.NoError(t, err)

	assert.ErrorIs(t, rt.ValidateGuests(0), roomtype.ErrGuestLimit)
	assert.NoError(t, rt.ValidateGuests(1))
	assert.NoError(t, rt.ValidateGuests(2))
	assert.ErrorIs(t, rt.ValidateGuests(3), roomtype.ErrGuestLimit)
}

func TestInitialCatalog(t *testing.T) {
	catalog := roomtype.InitialCatalog()
	require.Len(t, catalog, 3)

	for _, params := range catalog {
		_, err := roomtype.New(params)
		assert.NoError(t, err, params.ID)
	}
	assert.Equal(t, "villa-1", catalog[2].ID)
	assert.Equal(t, 15, catalog[2].MaxGuests)
}
