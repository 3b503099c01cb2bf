package request

import (
	"hotel-booking/internal/domain/roomtype"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("roomslug", func(fl validator.FieldLevel) bool {
		return roomtype.IsSlug(fl.Field().String())
	})
}
