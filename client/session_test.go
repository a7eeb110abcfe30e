package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking/models"
)

func TestSession_SetAndCurrent(t *testing.T) {
	s := NewSession()

	_, ok := s.Current()
	assert.False(t, ok)
	assert.Empty(t, s.Token())

	s.Set(Identity{ID: 7, Role: models.RoleCustomer, FirstName: "Ana"}, "tok")

	identity, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, uint(7), identity.ID)
	assert.Equal(t, "tok", s.Token())
}

func TestSession_NotifiesSubscribers(t *testing.T) {
	s := NewSession()

	var seen []*Identity
	s.Subscribe(func(i *Identity) { seen = append(seen, i) })

	s.Set(Identity{ID: 7, Role: models.RoleCustomer}, "tok")
	s.Clear()

	require.Len(t, seen, 2)
	require.NotNil(t, seen[0])
	assert.Equal(t, uint(7), seen[0].ID)
	assert.Nil(t, seen[1]) // logout is pushed as nil
}

func TestSession_Unsubscribe(t *testing.T) {
	s := NewSession()

	calls := 0
	unsubscribe := s.Subscribe(func(*Identity) { calls++ })

	s.Set(Identity{ID: 1}, "tok")
	unsubscribe()
	s.Clear()

	assert.Equal(t, 1, calls)
}

func TestSession_ClearDropsToken(t *testing.T) {
	s := NewSession()
	s.Set(Identity{ID: 1, Role: models.RoleAdmin}, "tok")

	s.Clear()

	_, ok := s.Current()
	assert.False(t, ok)
	assert.Empty(t, s.Token())
}

func TestIdentity_DisplayName(t *testing.T) {
	assert.Equal(t, "Ana Pop", Identity{FirstName: "Ana", LastName: "Pop"}.DisplayName())
	assert.Equal(t, "Ana", Identity{FirstName: "Ana"}.DisplayName())
	assert.Equal(t, "Pop", Identity{LastName: "Pop"}.DisplayName())
}

func TestIdentity_IsAdmin(t *testing.T) {
	assert.True(t, Identity{Role: models.RoleAdmin}.IsAdmin())
	assert.False(t, Identity{Role: models.RoleCustomer}.IsAdmin())
	assert.False(t, Identity{}.IsAdmin())
}
