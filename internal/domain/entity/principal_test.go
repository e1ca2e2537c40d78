package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariant_IsValid(t *testing.T) {
	for _, v := range Variants() {
		assert.True(t, v.IsValid(), v.String())
	}

	assert.False(t, Variant("").IsValid())
	assert.False(t, Variant("user").IsValid())
}
