package grammars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	a := Span{From: 10, To: 12, Line: 2, Col: 3}
	b := Span{From: 4, To: 6, Line: 1, Col: 5}
	assert.Equal(t, uint64(2), a.Len())
	assert.False(t, a.IsNull())
	assert.True(t, Span{}.IsNull())
	ext := a.Extend(b)
	assert.Equal(t, Span{From: 4, To: 12, Line: 1, Col: 5}, ext)
	assert.Equal(t, ext, b.Extend(a))
	assert.Equal(t, "1:5(4…12)", ext.String())
}
