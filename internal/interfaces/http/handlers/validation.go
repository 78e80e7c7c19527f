package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"rewear.backend/internal/domain/entities"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by request inputs.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("account_status", func(fl validator.FieldLevel) bool {
			_, ok := entities.ParseUserStatus(fl.Field().String())
			return ok
		})
	})
}
