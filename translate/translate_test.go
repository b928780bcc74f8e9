package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 stack empty", From("line %d %v", 3, "stack empty"))
}

func TestTo(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	assert.NoError(To(out, "%d\n", 42))
	assert.NoError(To(out, "Stopping.\n"))
	assert.Equal("42\nStopping.\n", out.String())
}
