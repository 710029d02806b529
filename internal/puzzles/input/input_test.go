package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\n\nb"))
	assert.Nil(t, Lines(""))
	assert.Nil(t, Lines("\n"))
}

func TestBlocks(t *testing.T) {
	got := Blocks("1\n2\n\n3\n\n4\n5\n")
	assert.Equal(t, [][]string{{"1", "2"}, {"3"}, {"4", "5"}}, got)
}

func TestInt(t *testing.T) {
	assert.Equal(t, int64(42), Int("42"))
	assert.Equal(t, int64(-7), Int(" -7 "))
	assert.Panics(t, func() { Int("x") })
}

func TestInts(t *testing.T) {
	assert.Equal(t, []int64{3, 4, -1}, Ints("3   4\t-1"))
	assert.Empty(t, Ints(""))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, int64(3), Abs(-3))
	assert.Equal(t, int64(3), Abs(3))
	assert.Equal(t, int64(0), Abs(0))
}
