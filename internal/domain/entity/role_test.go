package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoles(t *testing.T) {
	roles := RolesFromStrings([]string{"producer", "farmer", "admin"})

	assert.Equal(t, Roles{RoleProducer, RoleAdmin}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
	assert.False(t, roles.Contains(RoleSupermarket))
	assert.Equal(t, []string{"producer", "admin"}, roles.ToStrings())
	assert.Nil(t, RolesFromStrings(nil))
}

func TestRole_SelfAssignable(t *testing.T) {
	assert.True(t, RoleProducer.SelfAssignable())
	assert.True(t, RoleSupermarket.SelfAssignable())
	assert.False(t, RoleAdmin.SelfAssignable())
	assert.False(t, Role("farmer").SelfAssignable())
}
