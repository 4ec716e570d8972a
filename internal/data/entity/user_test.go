package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserAge(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate string
		want      int
	}{
		{"birthday passed this year", "2000-03-10", 26},
		{"birthday today", "2000-08-29", 26},
		{"birthday not yet reached", "2000-11-02", 25},
		{"born later this month", "2011-08-30", 14},
		{"unparsable date", "not-a-date", 0},
		{"future birth date", "2030-01-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{BirthDate: tt.birthDate}
			assert.Equal(t, tt.want, u.Age(now))
		})
	}
}

func TestUserRole(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleClient}).IsAdmin())
}

func TestRoomVIPRows(t *testing.T) {
	room := &Room{TotalRows: 5, VIPRows: 2, Columns: 8}

	assert.True(t, room.IsVIPRow(0))
	assert.True(t, room.IsVIPRow(1))
	assert.False(t, room.IsVIPRow(2))
	assert.False(t, room.IsVIPRow(-1))
}
