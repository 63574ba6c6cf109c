package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "dev", GetVersion())
	assert.Equal(t, "none", GetCommit())
	assert.Equal(t, "unknown", GetBuildDate())
	assert.Equal(t, "carbonhub/dev", UserAgent())
	assert.Equal(t, "dev (commit none, built unknown)", Long())
}
