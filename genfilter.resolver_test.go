package genfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtensionPairs(t *testing.T) {
	tests := []struct {
		name    string
		decl    string
		want    []extensionPair
		wantErr string
	}{
		{
			name: "single pair",
			decl: "size SizeHandler",
			want: []extensionPair{{local: "size", handler: "SizeHandler"}},
		},
		{
			name: "multiple pairs",
			decl: "size SizeHandler color plugin.ColorHandler",
			want: []extensionPair{
				{local: "size", handler: "SizeHandler"},
				{local: "color", handler: "plugin.ColorHandler"},
			},
		},
		{
			name: "surrounding and repeated whitespace",
			decl: "  size \t SizeHandler\n ",
			want: []extensionPair{{local: "size", handler: "SizeHandler"}},
		},
		{
			name:    "odd token count",
			decl:    "size SizeHandler dangling",
			wantErr: ErrMsgMalformedExtensionDecl,
		},
		{
			name:    "empty declaration",
			decl:    "   ",
			wantErr: ErrMsgEmptyExtensionDecl,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := parseExtensionPairs(tt.decl, "/t.xml", "item")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, pairs)
		})
	}
}

func TestFindExtensionPair(t *testing.T) {
	pairs := []extensionPair{
		{local: "size", handler: "SizeHandler"},
		{local: "color", handler: "ColorHandler"},
	}

	pair, ok := findExtensionPair(pairs, "color")
	require.True(t, ok)
	assert.Equal(t, "ColorHandler", pair.handler)

	_, ok = findExtensionPair(pairs, "width")
	assert.False(t, ok)
}

func TestSplitFeatureValues(t *testing.T) {
	assert.Equal(t, []string{"10", "20"}, splitFeatureValues("10,20", ","))
	assert.Equal(t, []string{"solo"}, splitFeatureValues("solo", ","))
	assert.Equal(t, []string{}, splitFeatureValues("", ","))
	assert.Equal(t, []string{"a", "b"}, splitFeatureValues("a|b", "|"))
}
