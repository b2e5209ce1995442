package buildinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zestagio/static-server/internal/buildinfo"
)

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, buildinfo.Version())
}
