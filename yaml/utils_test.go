package yaml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeString(t *testing.T) {
	assert.Equal(t, SafeString(""), "\"\"")
	assert.Equal(t, SafeString("test"), "\"test\"")
	assert.Equal(t, SafeString("test\""), "\"test\\\"\"")
	assert.Equal(t, SafeString("\\"), "\"\\\\\"")
}

func TestPrintSequence(t *testing.T) {
	var buf bytes.Buffer
	PrintSequence(&buf, []int32{1, -20, 300, 4}, 2, "keys", 3)
	assert.Equal(t, "  keys: [  1, -20, 300,\n      4]\n", buf.String())
	buf.Reset()
	PrintSequence(&buf, []int32{5, 6}, 0, "keys", 0)
	assert.Equal(t, "keys: [5, 6]\n", buf.String())
}

func TestPrintSequenceEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintSequence(&buf, nil, 4, "keys", 10)
	assert.Equal(t, "    keys: []\n", buf.String())
}
