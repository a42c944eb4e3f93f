package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/dewrapsquare/dewrap-api/models"
)

var (
	ErrEmptyCart      = errors.New("please add items to your cart first")
	ErrInvalidName    = errors.New("please enter a valid name (letters only)")
	ErrInvalidPhone   = errors.New("please enter a valid 10-digit Ghana phone number")
	ErrMissingAddress = errors.New("please enter your delivery location")
)

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneRegex = regexp.MustCompile(`^0\d{9}$`)
)

// ValidateCheckout runs the strict checkout checks in a fixed order
// and stops at the first failure: cart contents, then name, phone and
// delivery address.
func ValidateCheckout(cart *models.Cart, customer models.CustomerInfo) error {
	if cart.IsEmpty() {
		return ErrEmptyCart
	}
	if customer.Name == "" || !nameRegex.MatchString(customer.Name) {
		return ErrInvalidName
	}
	if !phoneRegex.MatchString(customer.Phone) {
		return ErrInvalidPhone
	}
	if customer.Delivery && strings.TrimSpace(customer.Address) == "" {
		return ErrMissingAddress
	}
	return nil
}
