package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	t.Parallel()

	roles := RolesFromStrings([]string{"pricing_admin", "merchant", "pricing_viewer"})

	assert.Equal(t, Roles{RolePricingAdmin, RolePricingViewer}, roles)
	assert.True(t, roles.Contains(RolePricingAdmin))
	assert.False(t, Roles{RolePricingViewer}.Contains(RolePricingAdmin))
	assert.Equal(t, []string{"pricing_admin", "pricing_viewer"}, roles.ToStrings())
}
