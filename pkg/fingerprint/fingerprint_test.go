package fingerprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFormat(t *testing.T) {
	t.Parallel()

	fp := New("203.0.113.10", "Mozilla/5.0")

	assert.True(t, strings.HasPrefix(fp, "v1:"))
	assert.True(t, IsValid(fp))
}

func TestNewIsUniquePerCall(t *testing.T) {
	t.Parallel()

	// Same inputs, different salt/timestamp per call
	a := New("203.0.113.10", "Mozilla/5.0")
	b := New("203.0.113.10", "Mozilla/5.0")

	assert.NotEqual(t, a, b)
}

func TestMintIsDeterministic(t *testing.T) {
	t.Parallel()

	a := mint("203.0.113.10", "Mozilla/5.0", 1700000000, 42)
	b := mint("203.0.113.10", "Mozilla/5.0", 1700000000, 42)
	c := mint("203.0.113.10", "Mozilla/5.0", 1700000001, 42)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestMintDelimiterPreventsCollision(t *testing.T) {
	t.Parallel()

	a := mint("ab", "c", 1, 0)
	b := mint("a", "bc", 1, 0)

	assert.NotEqual(t, a, b)
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValid(mint("ip", "ua", 1, 1)))

	assert.False(t, IsValid(""))
	assert.False(t, IsValid("v1:"))
	assert.False(t, IsValid("v2:abc123"))
	assert.False(t, IsValid("no-prefix"))
	assert.False(t, IsValid("v1:UPPER"))
	assert.False(t, IsValid("v1:has space"))
	assert.False(t, IsValid("v1:"+strings.Repeat("a", 40)))
}
