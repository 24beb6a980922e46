package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitComma(t *testing.T) {
	assert.Nil(t, SplitComma(""))
	assert.Equal(t, []string{"1", "3", "5"}, SplitComma("1,3,5"))
	// Empty segments from trailing or doubled commas are dropped
	assert.Equal(t, []string{"1", "3"}, SplitComma("1,,3,"))
	assert.Nil(t, SplitComma(",,"))
}

func TestJoinComma(t *testing.T) {
	assert.Equal(t, "", JoinComma(nil))
	assert.Equal(t, "1,3,5", JoinComma([]string{"1", "3", "5"}))
	assert.Equal(t, "1,3", JoinComma([]string{"1", "", "3", ""}))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	joined := JoinComma(SplitComma("2,4,,6,"))
	assert.Equal(t, "2,4,6", joined)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultPageSize, ClampLimit(0))
	assert.Equal(t, DefaultPageSize, ClampLimit(-3))
	assert.Equal(t, DefaultPageSize, ClampLimit(MaxPageSize+1))
	assert.Equal(t, 25, ClampLimit(25))
}
