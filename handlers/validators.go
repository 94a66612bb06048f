package handlers

import (
	"github.com/Ashik0101/food-delivery-app/models"
	"github.com/Ashik0101/food-delivery-app/statemachine"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// AddressPayload is the postal address shape shared by register, restaurant
// creation and order placement. Every field is required.
type AddressPayload struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Country string `json:"country" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
}

func (a AddressPayload) toModel() models.Address {
	return models.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		Zip:     a.Zip,
	}
}

// RegisterValidators installs custom validations on gin's binding engine.
// Must be called once before routes are served.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// orderstatus: field value must be a member of the order status enumeration
		_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
			return statemachine.IsValid(models.OrderStatus(fl.Field().String()))
		})
	}
}
