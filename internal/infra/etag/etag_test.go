package etag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrong(t *testing.T) {
	a := Strong([]byte(`[{"title":"ORIGEN"}]`))
	assert.Equal(t, a, Strong([]byte(`[{"title":"ORIGEN"}]`)))
	assert.NotEqual(t, a, Strong([]byte(`[]`)))
	assert.Len(t, a, 34)
	assert.Equal(t, byte('"'), a[0])
}

func TestMatches(t *testing.T) {
	tag := Strong([]byte("body"))

	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{tag, true},
		{"W/" + tag, true},
		{`"other", ` + tag, true},
		{"*", true},
		{`"other"`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Matches(tt.header, tag), tt.header)
	}
}
