package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/forno/pkg/validate"
)

type orderInput struct {
	Customer string `json:"customer" validate:"required,alpha_dash,min=2,max=10"`
	Size     string `json:"size"     validate:"nullable,in=small,medium,large"`
}

func TestStructValid(t *testing.T) {
	errs := validate.Struct(orderInput{Customer: "mario", Size: "large"})
	assert.False(t, validate.HasErrors(errs))
}

func TestRequired(t *testing.T) {
	errs := validate.Struct(orderInput{Size: "small"})
	assert.Contains(t, errs, "customer")
}

func TestNullableSkipsRemainingRules(t *testing.T) {
	errs := validate.Struct(orderInput{Customer: "mario"})
	assert.False(t, validate.HasErrors(errs))
}

func TestInListKeepsItsCommas(t *testing.T) {
	// in=small,medium,large must stay one rule despite the commas.
	assert.False(t, validate.HasErrors(validate.Struct(orderInput{Customer: "mario", Size: "medium"})))

	errs := validate.Struct(orderInput{Customer: "mario", Size: "calzone"})
	assert.Contains(t, errs, "size")
}

func TestAlphaDash(t *testing.T) {
	errs := validate.Struct(orderInput{Customer: "mario rossi", Size: "small"})
	assert.Contains(t, errs, "customer")

	errs = validate.Struct(orderInput{Customer: "mario_rossi-2", Size: "small"})
	assert.False(t, validate.HasErrors(errs))
}

func TestMinMax(t *testing.T) {
	errs := validate.Struct(orderInput{Customer: "m"})
	assert.Contains(t, errs, "customer")

	errs = validate.Struct(orderInput{Customer: "mariorossi123"})
	assert.Contains(t, errs, "customer")
}

func TestFirstFailingRuleWinsPerField(t *testing.T) {
	errs := validate.Struct(orderInput{Customer: ""})
	assert.Equal(t, "The customer field is required.", errs["customer"])
}
