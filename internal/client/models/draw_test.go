package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDrawDate(t *testing.T) {
	d := Draw{Date: "2024-03-16"}
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), d.DrawDate())
	assert.True(t, Draw{Date: "16/03/2024"}.DrawDate().IsZero())
}

func TestDrawValidate(t *testing.T) {
	ok := Draw{
		Date:      "2024-03-16",
		Prize1:    "123456",
		First3One: "123", First3Two: "456",
		Last3One: "789", Last3Two: "012",
		Last2: "34",
	}
	assert.Empty(t, ok.Validate())

	bad := Draw{Date: "", Prize1: "12", First3One: "1", Last2: "345"}
	errs := bad.Validate()
	assert.Contains(t, errs, "date")
	assert.Contains(t, errs, "prize1")
	assert.Contains(t, errs, "first3")
	assert.Contains(t, errs, "last3")
	assert.Contains(t, errs, "last2")
}
