package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking/models"
	"hotel-booking/utils"
)

func TestValidateStayDates(t *testing.T) {
	// Anchor on the wall-clock date so the test holds in any time zone;
	// a stay starting today must never count as "in the past".
	today, err := utils.ParseDate(time.Now().Format(utils.DateLayout))
	require.NoError(t, err)

	assert.NoError(t, validateStayDates(today, today.AddDate(0, 0, 2)))
	assert.NoError(t, validateStayDates(today.AddDate(0, 0, 1), today.AddDate(0, 0, 3)))

	assert.ErrorIs(t, validateStayDates(today.AddDate(0, 0, -1), today.AddDate(0, 0, 1)), models.ErrCheckInInPast)
	assert.ErrorIs(t, validateStayDates(today, today), models.ErrCheckOutNotAfter)
	assert.ErrorIs(t, validateStayDates(today.AddDate(0, 0, 2), today), models.ErrCheckOutNotAfter)
	assert.ErrorIs(t, validateStayDates(today, today.AddDate(0, 0, 31)), models.ErrStayTooLong)
}

func TestValidateStayDates_MaxStay(t *testing.T) {
	today, err := utils.ParseDate(time.Now().Format(utils.DateLayout))
	require.NoError(t, err)

	assert.NoError(t, validateStayDates(today, today.AddDate(0, 0, 30)))
}
