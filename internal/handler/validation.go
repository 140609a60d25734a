package handler

import (
	"fmt"
	"reflect"
	"time"

	"eventhub/pkg/clock"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// MinEventLead is how far ahead of now an event date must be.
const MinEventLead = 2 * time.Hour

var timeType = reflect.TypeOf(time.Time{})

// RegisterValidators adds the custom binding tags to gin's validator.
func RegisterValidators(clk clock.Clock) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	// eventdate applies to new events, future to edits of existing ones
	if err := v.RegisterValidation("eventdate", notBeforeValidator(clk, MinEventLead)); err != nil {
		return err
	}
	return v.RegisterValidation("future", futureValidator(clk))
}

func notBeforeValidator(clk clock.Clock, lead time.Duration) validator.Func {
	return func(fl validator.FieldLevel) bool {
		t, ok := fieldTime(fl)
		return ok && !t.Before(clk.Now().Add(lead))
	}
}

func futureValidator(clk clock.Clock) validator.Func {
	return func(fl validator.FieldLevel) bool {
		t, ok := fieldTime(fl)
		return ok && t.After(clk.Now())
	}
}

func fieldTime(fl validator.FieldLevel) (time.Time, bool) {
	field := fl.Field()
	if !field.Type().ConvertibleTo(timeType) {
		return time.Time{}, false
	}
	return field.Convert(timeType).Interface().(time.Time), true
}
