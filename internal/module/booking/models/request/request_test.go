package request_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
)

func TestParseDates(t *testing.T) {
	todayUTC := time.Now().UTC()
	dayAsString := func(t time.Time) string { return t.Format("2006-01-02") }

	t.Run("same-day start accepted in a west-of-UTC timezone", func(t *testing.T) {
		// Dates parse as UTC midnights, so "today" must be the UTC day even
		// when the server clock sits behind UTC.
		loc, err := time.LoadLocation("America/New_York")
		assert.NoError(t, err)
		original := time.Local
		time.Local = loc
		defer func() { time.Local = original }()

		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: dayAsString(todayUTC),
			EndDate:   dayAsString(todayUTC.AddDate(0, 0, 3)),
			NumGuests: 2,
		}

		start, end, err := payload.ParseDates()

		assert.NoError(t, err)
		assert.Equal(t, time.UTC, start.Location())
		assert.True(t, end.After(start))
	})

	t.Run("past start rejected", func(t *testing.T) {
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: dayAsString(todayUTC.AddDate(0, 0, -1)),
			EndDate:   dayAsString(todayUTC.AddDate(0, 0, 3)),
			NumGuests: 2,
		}

		_, _, err := payload.ParseDates()

		assert.Equal(t, errors.BadRequest("startDate must be a future date or today"), err)
	})

	t.Run("end must be after start", func(t *testing.T) {
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: dayAsString(todayUTC.AddDate(0, 0, 5)),
			EndDate:   dayAsString(todayUTC.AddDate(0, 0, 5)),
			NumGuests: 2,
		}

		_, _, err := payload.ParseDates()

		assert.Equal(t, errors.BadRequest("endDate must be after startDate"), err)
	})

	t.Run("unparseable start rejected", func(t *testing.T) {
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: "not-a-date",
			EndDate:   dayAsString(todayUTC.AddDate(0, 0, 3)),
			NumGuests: 2,
		}

		_, _, err := payload.ParseDates()

		assert.Equal(t, errors.BadRequest("Invalid startDate"), err)
	})

	t.Run("rfc3339 values accepted", func(t *testing.T) {
		start := todayUTC.AddDate(0, 0, 5)
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: start.Format(time.RFC3339),
			EndDate:   start.AddDate(0, 0, 2).Format(time.RFC3339),
			NumGuests: 2,
		}

		_, _, err := payload.ParseDates()

		assert.NoError(t, err)
	})
}
