package draft

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
)

func TestRowMapping_FullDraft(t *testing.T) {
	d := domain.NewBookingDraft("mentee-1")
	d.SetMentor(domain.MentorSummary{ID: "mentor-1", Name: "Ada Lovelace", Title: "Staff Engineer", HourlyRate: 80})
	d.SetAvailability([]domain.AvailabilityWindow{
		{DayOfWeek: 0, StartHour: 9, EndHour: 12},
		{DayOfWeek: 0, StartHour: 10, EndHour: 11},
	})
	require.NoError(t, d.SetDate(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, d.SetTime("10:00"))
	require.NoError(t, d.SetTopic("Interviews"))
	d.Step = domain.StepReview
	d.MarkFailed("upstream timeout")

	row, err := toRow(d)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"day_of_week":0,"start_hour":9,"end_hour":12},{"day_of_week":0,"start_hour":10,"end_hour":11}]`, string(row.Availability))
	assert.Equal(t, 3, row.Step)
	assert.True(t, row.Error.Valid)
	assert.False(t, row.SessionID.Valid)

	got, err := row.toDomain()
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestRowMapping_InitialDraft(t *testing.T) {
	d := domain.NewBookingDraft("mentee-1")

	row, err := toRow(d)
	require.NoError(t, err)
	assert.Nil(t, row.Mentor)
	assert.Nil(t, jsonParam(row.Mentor))
	assert.Equal(t, "[]", string(row.Availability))
	assert.False(t, row.SelectedDate.Valid)

	got, err := row.toDomain()
	require.NoError(t, err)
	assert.Nil(t, got.Mentor)
	assert.Nil(t, got.Availability)
	assert.Nil(t, got.SelectedDate)
	assert.Equal(t, domain.StepSelectDateTime, got.Step)
}

func TestRowMapping_PostgresDateIsNormalized(t *testing.T) {
	// lib/pq отдает DATE как полночь в часовом поясе соединения
	loc := time.FixedZone("UTC+5", 5*60*60)
	row := &draftRow{
		MenteeID:     "m",
		Availability: []byte("[]"),
		Step:         1,
	}
	row.SelectedDate.Valid = true
	row.SelectedDate.Time = time.Date(2025, time.March, 10, 0, 0, 0, 0, loc)

	got, err := row.toDomain()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), *got.SelectedDate)
}
