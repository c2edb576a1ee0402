package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo_CachedIdentity(t *testing.T) {
	first := GetInfo()
	second := GetInfo()

	assert.Equal(t, first.InstanceID, second.InstanceID)
	assert.NotEmpty(t, first.InstanceID)
	assert.NotEmpty(t, first.GoVersion)
	assert.NotEmpty(t, first.Hostname)
}

func TestInfo_String(t *testing.T) {
	s := Info{
		Version:   "v1.2.0",
		GitCommit: "abc1234",
		BuildDate: "2026-01-01T00:00:00Z",
		GoVersion: "go1.25.0",
	}.String()

	assert.True(t, strings.HasPrefix(s, "api-comida-peru v1.2.0"))
	assert.Contains(t, s, "abc1234")
	assert.Contains(t, s, "go1.25.0")
}
