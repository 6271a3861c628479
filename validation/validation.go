// Package validation evaluates the per-entity rule sets at the API
// boundary, before anything touches the database. Struct rules are
// declared as validator tags on the request types; cross-field rules
// (date ordering, the tier set) live here as functions. Every rule
// produces the same FieldError shape so handlers can return a uniform
// 400 payload.
package validation

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wanderlk/tour-api/models"
)

var validate = validator.New()

func init() {
	validate.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
		return models.IsValidTier(models.PackageTier(fl.Field().String()))
	})
}

// FieldError is a single failed rule, addressed to the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Struct runs the tag-declared rules on a request type and flattens the
// result into field errors.
func Struct(s interface{}) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	var errs []FieldError
	for _, fe := range invalid {
		errs = append(errs, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "tier":
		return "must be one of Standard, Premium or VIP"
	default:
		return fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
}

// DateOrder enforces EndDate strictly after StartDate.
func DateOrder(start, end time.Time) []FieldError {
	var errs []FieldError
	if start.IsZero() {
		errs = append(errs, FieldError{Field: "start_date", Message: "is required"})
	}
	if end.IsZero() {
		errs = append(errs, FieldError{Field: "end_date", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	if !end.After(start) {
		errs = append(errs, FieldError{Field: "end_date", Message: "must be after start_date"})
	}
	return errs
}

// PackageTiers requires exactly one sub-package per tier, each with a
// positive price and at least one tour day.
func PackageTiers(subs []models.SubPackage) []FieldError {
	var errs []FieldError

	if len(subs) != len(models.Tiers) {
		errs = append(errs, FieldError{
			Field:   "packages",
			Message: fmt.Sprintf("must contain exactly %d tiered sub-packages", len(models.Tiers)),
		})
	}

	seen := map[models.PackageTier]int{}
	for i, sub := range subs {
		field := fmt.Sprintf("packages[%d]", i)
		if !models.IsValidTier(sub.Tier) {
			errs = append(errs, FieldError{Field: field + ".tier", Message: "must be one of Standard, Premium or VIP"})
			continue
		}
		seen[sub.Tier]++
		if sub.Price <= 0 {
			errs = append(errs, FieldError{Field: field + ".price", Message: "must be greater than 0"})
		}
		if sub.TourDays < 1 {
			errs = append(errs, FieldError{Field: field + ".tour_days", Message: "must be at least 1"})
		}
	}

	for _, tier := range models.Tiers {
		switch seen[tier] {
		case 0:
			errs = append(errs, FieldError{Field: "packages", Message: fmt.Sprintf("missing %s tier", tier)})
		case 1:
			// ok
		default:
			errs = append(errs, FieldError{Field: "packages", Message: fmt.Sprintf("duplicate %s tier", tier)})
		}
	}

	return errs
}
