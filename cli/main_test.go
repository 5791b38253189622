package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpFunc(t *testing.T) {
	help := helpFunc(commands(&Meta{}))

	assert.True(t, strings.HasPrefix(help, helpHeader))
	for _, name := range []string{"describe", "modify", "permissions", "state", "watch"} {
		assert.Contains(t, help, name)
	}
}
