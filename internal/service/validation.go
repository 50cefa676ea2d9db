package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/trackme-api/internal/models"
)

// registerValidators installs the domain tags used by request structs.
// Registering the same tag twice simply replaces it.
func registerValidators(v *validator.Validate) *validator.Validate {
	if v == nil {
		v = validator.New()
	}
	_ = v.RegisterValidation("attendance_status", func(fl validator.FieldLevel) bool {
		return models.AttendanceStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("habit_type", func(fl validator.FieldLevel) bool {
		switch models.HabitType(fl.Field().String()) {
		case models.HabitTypeRecurring, models.HabitTypeToday:
			return true
		default:
			return false
		}
	})
	return v
}
