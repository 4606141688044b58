package services

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"SocialMedia/models"
)

// Rules live in the validate tags on models.Account and models.Message.
// String lengths are counted in runes.
var validate = validator.New(validator.WithRequiredStructEnabled())

var messageTextRule = "min=1,max=" + strconv.Itoa(models.MaxMessageLength)

func validateStruct(v any, sentinel error) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	return nil
}

func validateMessageText(text string) error {
	if err := validate.Var(text, messageTextRule); err != nil {
		return fmt.Errorf("%w: message_text %v", ErrInvalidMessage, err)
	}
	return nil
}
