package pricing_test

import (
	"testing"
	"time"

	"lodge/internal/domains/booking/pricing"
	rateModel "lodge/internal/domains/ratecard/model"
	roomModel "lodge/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func rate(roomType roomModel.RoomType, bathroomType roomModel.BathroomType, durationType rateModel.DurationType, cost int64) rateModel.RateCard {
	return rateModel.RateCard{
		RoomType:     roomType,
		BathroomType: bathroomType,
		DurationType: durationType,
		Cost:         cost,
	}
}

func TestResolveDue(t *testing.T) {
	tests := []struct {
		name         string
		roomType     roomModel.RoomType
		bathroomType roomModel.BathroomType
		checkIn      time.Time
		checkOut     time.Time
		rates        []rateModel.RateCard
		expected     int64
	}{
		{
			name:         "daily rate for a ten day stay",
			roomType:     roomModel.RoomTypeStandard,
			bathroomType: roomModel.BathroomTypeAttached,
			checkIn:      date(2025, time.March, 1),
			checkOut:     date(2025, time.March, 11),
			rates: []rateModel.RateCard{
				rate(roomModel.RoomTypeStandard, roomModel.BathroomTypeAttached, rateModel.DurationTypeDaily, 500),
			},
			expected: 5000,
		},
		{
			name:         "monthly rate charged per day for a forty day stay",
			roomType:     roomModel.RoomTypeDeluxe,
			bathroomType: roomModel.BathroomTypeShared,
			checkIn:      date(2025, time.March, 1),
			checkOut:     date(2025, time.April, 10),
			rates: []rateModel.RateCard{
				rate(roomModel.RoomTypeDeluxe, roomModel.BathroomTypeShared, rateModel.DurationTypeMonthly, 100),
			},
			expected: 160000,
		},
		{
			name:         "thirty day stay matches neither bracket",
			roomType:     roomModel.RoomTypeStandard,
			bathroomType: roomModel.BathroomTypeAttached,
			checkIn:      date(2025, time.March, 1),
			checkOut:     date(2025, time.March, 31),
			rates: []rateModel.RateCard{
				rate(roomModel.RoomTypeStandard, roomModel.BathroomTypeAttached, rateModel.DurationTypeDaily, 500),
				rate(roomModel.RoomTypeStandard, roomModel.BathroomTypeAttached, rateModel.DurationTypeMonthly, 400),
			},
			expected: 0,
		},
		{
			name:         "no matching category resolves to zero",
			roomType:     roomModel.RoomTypeDeluxe,
			bathroomType: roomModel.BathroomTypeAttached,
			checkIn:      date(2025, time.March, 1),
			checkOut:     date(2025, time.March, 6),
			rates: []rateModel.RateCard{
				rate(roomModel.RoomTypeStandard, roomModel.BathroomTypeAttached, rateModel.DurationTypeDaily, 500),
			},
			expected: 0,
		},
		{
			name:         "empty rate list resolves to zero",
			roomType:     roomModel.RoomTypeStandard,
			bathroomType: roomModel.BathroomTypeShared,
			checkIn:      date(2025, time.March, 1),
			checkOut:     date(2025, time.March, 6),
			rates:        []rateModel.RateCard{},
			expected:     0,
		},
		{
			name:         "five day stay at three hundred per day",
			roomType:     roomModel.RoomTypeStandard,
			bathroomType: roomModel.BathroomTypeShared,
			checkIn:      date(2025, time.June, 10),
			checkOut:     date(2025, time.June, 15),
			rates: []rateModel.RateCard{
				rate(roomModel.RoomTypeStandard, roomModel.BathroomTypeShared, rateModel.DurationTypeDaily, 300),
			},
			expected: 1500,
		},
		{
			name:         "monthly rate multiplies the day count twice",
			roomType:     roomModel.RoomTypeStandard,
			bathroomType: roomModel.BathroomTypeAttached,
			checkIn:      date(2025, time.March, 1),
			checkOut:     date(2025, time.April, 10),
			rates: []rateModel.RateCard{
				rate(roomModel.RoomTypeStandard, roomModel.BathroomTypeAttached, rateModel.DurationTypeMonthly, 50),
			},
			expected: 80000,
		},
		{
			name:         "first matching rate wins over later ones",
			roomType:     roomModel.RoomTypeStandard,
			bathroomType: roomModel.BathroomTypeAttached,
			checkIn:      date(2025, time.March, 1),
			checkOut:     date(2025, time.March, 6),
			rates: []rateModel.RateCard{
				rate(roomModel.RoomTypeStandard, roomModel.BathroomTypeAttached, rateModel.DurationTypeDaily, 500),
				rate(roomModel.RoomTypeStandard, roomModel.BathroomTypeAttached, rateModel.DurationTypeDaily, 900),
			},
			expected: 2500,
		},
		{
			name:         "daily rate skipped for a long stay until a monthly rate is found",
			roomType:     roomModel.RoomTypeStandard,
			bathroomType: roomModel.BathroomTypeAttached,
			checkIn:      date(2025, time.March, 1),
			checkOut:     date(2025, time.April, 10),
			rates: []rateModel.RateCard{
				rate(roomModel.RoomTypeStandard, roomModel.BathroomTypeAttached, rateModel.DurationTypeDaily, 500),
				rate(roomModel.RoomTypeStandard, roomModel.BathroomTypeAttached, rateModel.DurationTypeMonthly, 100),
			},
			expected: 160000,
		},
		{
			name:         "year boundary produces a negative span and a negative due",
			roomType:     roomModel.RoomTypeStandard,
			bathroomType: roomModel.BathroomTypeAttached,
			checkIn:      date(2025, time.December, 30),
			checkOut:     date(2026, time.January, 2),
			rates: []rateModel.RateCard{
				rate(roomModel.RoomTypeStandard, roomModel.BathroomTypeAttached, rateModel.DurationTypeDaily, 500),
			},
			expected: -181000,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := pricing.ResolveDue(test.roomType, test.bathroomType, test.checkIn, test.checkOut, test.rates)

			assert.Equal(t, test.expected, got)
		})
	}
}

func TestResolveDue_Deterministic(t *testing.T) {
	rates := []rateModel.RateCard{
		rate(roomModel.RoomTypeDeluxe, roomModel.BathroomTypeShared, rateModel.DurationTypeMonthly, 150),
		rate(roomModel.RoomTypeDeluxe, roomModel.BathroomTypeShared, rateModel.DurationTypeDaily, 700),
	}

	checkIn := date(2025, time.January, 5)
	checkOut := date(2025, time.February, 20)

	first := pricing.ResolveDue(roomModel.RoomTypeDeluxe, roomModel.BathroomTypeShared, checkIn, checkOut, rates)

	for range 10 {
		got := pricing.ResolveDue(roomModel.RoomTypeDeluxe, roomModel.BathroomTypeShared, checkIn, checkOut, rates)

		assert.Equal(t, first, got)
	}
}

func TestStayLengthDays(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "same month",
			checkIn:  date(2025, time.March, 1),
			checkOut: date(2025, time.March, 11),
			expected: 10,
		},
		{
			name:     "same day",
			checkIn:  date(2025, time.March, 1),
			checkOut: date(2025, time.March, 1),
			expected: 0,
		},
		{
			name:     "across a year boundary",
			checkIn:  date(2025, time.December, 30),
			checkOut: date(2026, time.January, 2),
			expected: -362,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, pricing.StayLengthDays(test.checkIn, test.checkOut))
		})
	}
}
