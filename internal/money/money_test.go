package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10.0, RoundCents(10.004))
	assert.Equal(t, 10.01, RoundCents(10.005))
	assert.Equal(t, 10.01, RoundCents(10.0099))
	assert.Equal(t, -2.35, RoundCents(-2.345))
	assert.Equal(t, 0.0, RoundCents(0))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$12.34", Format(12.34))
	assert.Equal(t, "$0.00", Format(0))
	assert.Equal(t, "$200.00", Format(200))
}
