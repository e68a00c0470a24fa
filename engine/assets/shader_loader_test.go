package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadShader(t *testing.T) {
	for _, name := range []string{"renderer2d.vert", "renderer2d.frag"} {
		src, err := LoadShader(name)
		require.NoError(t, err, name)
		require.True(t, strings.HasPrefix(src, "#version 330 core"), name)
		require.True(t, strings.HasSuffix(src, "\x00"), name)
	}
}

func TestLoadShaderMissing(t *testing.T) {
	_, err := LoadShader("nope.frag")
	require.ErrorContains(t, err, "nope.frag")
}
