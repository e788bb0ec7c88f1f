package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopes(t *testing.T) {
	scope1 := ParseScopes("read write:statuses  follow")
	if assert.Len(t, scope1.Body, 3) {
		assert.Equal(t, scope1.Grants("read"), true)
		assert.Equal(t, scope1.Grants("read:accounts"), true)
		assert.Equal(t, scope1.Grants("write:statuses"), true)
		assert.Equal(t, scope1.Grants("write:media"), false)
		assert.Equal(t, scope1.Grants("write"), false)
	}

	scope2 := ParseScopes("read:account,write:notes")
	assert.Equal(t, []string{"read:account", "write:notes"}, scope2.List())
	assert.Equal(t, scope2.Grants("read:account"), true)
	assert.Equal(t, scope2.Grants("read"), false)

	assert.Empty(t, ParseScopes("").List())
}

func TestScopesMissing(t *testing.T) {
	granted := ParseScopes("read write:statuses")
	requested := NewScopes([]string{"read:accounts", "write", "push", "write:statuses"})
	assert.Equal(t, []string{"push", "write"}, granted.Missing(requested))
	assert.Empty(t, granted.Missing(ParseScopes("read")))
}
