package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 bad", From("line %d %v", 3, "bad"))
	assert.NotNil(Printer())
	assert.Equal("counter: 0111", Printer().Sprintf("counter: %s", "0111"))
}
