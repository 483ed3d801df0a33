package handlers

import (
	"sync"

	"github.com/SscSPs/corebank/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("accountnumber", func(fl validator.FieldLevel) bool {
			return utils.IsValidAccountNumber(fl.Field().String())
		})
	})
}
