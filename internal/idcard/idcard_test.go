package idcard

import (
	"bytes"
	"testing"
	"time"

	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberFor(t *testing.T) {
	assert.Equal(t, "BRG-000042-2025", NumberFor(42, 2025))
	assert.Equal(t, "BRG-1234567-2026", NumberFor(1234567, 2026))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "barangay-id-BRG-000042-2025.pdf", FileName("BRG-000042-2025"))
	assert.Equal(t, "barangay-id-unknown.pdf", FileName(""))
}

func TestFromUser(t *testing.T) {
	issued := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	user := &models.User{
		ID:       "42",
		Username: "ana@example.ph",
		Profile: &models.UserProfile{
			Name:          "Ana Peñaflor",
			Address:       "Purok 3, Sindalan",
			Birthdate:     "1990-07-14",
			CivilStatus:   "single",
			ContactNumber: "09171234567",
			Role:          models.RoleResident,
		},
	}

	card, err := FromUser(user, "SINDALAN SANFERNANDO, PAMPANGA", issued)

	require.NoError(t, err)
	assert.Equal(t, "BRG-000042-2025", card.Number)
	assert.Equal(t, "Ana Peñaflor", card.Name)
	assert.Equal(t, "07/14/1990", card.Birthdate)
	assert.Equal(t, "resident", card.Role)
	assert.Equal(t, time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC), card.ValidUntil())
}

func TestFromUser_WithoutProfileUsesUsername(t *testing.T) {
	card, err := FromUser(&models.User{ID: "7", Username: "juan"}, "", time.Now())

	require.NoError(t, err)
	assert.Equal(t, "juan", card.Name)
	assert.Empty(t, card.Address)
}

func TestFromUser_NonNumericID(t *testing.T) {
	_, err := FromUser(&models.User{ID: "abc"}, "", time.Now())

	assert.ErrorIs(t, err, ErrNoNumericID)
}

func TestRender(t *testing.T) {
	card := &Card{
		Number:   "BRG-000042-2025",
		Name:     "Ana Peñaflor",
		Address:  "Purok 3, Sindalan, San Fernando, Pampanga, a fairly long address that needs wrapping across lines",
		Locality: "SINDALAN SANFERNANDO, PAMPANGA",
		IssuedAt: time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC),
	}
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, card))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-1.")))
	assert.Contains(t, string(out), "Barangay ID BRG-000042-2025")
	// 86x54 мм в пунктах
	assert.Contains(t, string(out), "/MediaBox [0 0 243.78 153.07]")
	assert.True(t, bytes.HasSuffix(bytes.TrimSpace(out), []byte("%%EOF")))
}
