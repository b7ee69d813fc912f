package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullInt64(t *testing.T) {
	var zero NullInt64
	assert.True(t, zero.IsNull(), "zero value is null")
	assert.Equal(t, "", zero.String())

	v := Int64(48060)
	assert.False(t, v.IsNull())
	assert.Equal(t, "48060", v.String())

	assert.Equal(t, "0", Int64(0).String(), "zero is a value, not null")
	assert.Equal(t, "151853870", Int64(151853870).String())
	assert.Equal(t, "-3", Int64(-3).String())
}

func TestNullString(t *testing.T) {
	var zero NullString
	assert.True(t, zero.IsNull())
	assert.Equal(t, "", zero.String())

	v := String("Bachelor's degree")
	assert.False(t, v.IsNull())
	assert.Equal(t, "Bachelor's degree", v.String())

	assert.False(t, String("").IsNull(), "an explicit empty string is still valid")
}
