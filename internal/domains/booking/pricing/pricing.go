// Package pricing resolves the amount due for a stay from the rate card
// list. The rules are carried over from the legacy billing system and are
// kept bit-for-bit compatible with it, quirks included.
package pricing

import (
	"time"

	rateModel "lodge/internal/domains/ratecard/model"
	roomModel "lodge/internal/domains/room/model"
)

// ResolveDue computes the amount owed for a stay.
//
// The stay length is the difference between the check-out and check-in
// day-of-year values, so a stay that crosses a year boundary comes out
// negative. The rate list is scanned front to back and the first entry
// matching both room and bathroom category decides the price: monthly rates
// apply to stays longer than 30 days and are charged per day, daily rates to
// stays shorter than 30 days. A 30-day stay matches neither bracket, and a
// stay with no matching rate resolves to zero.
func ResolveDue(roomType roomModel.RoomType, bathroomType roomModel.BathroomType, checkIn, checkOut time.Time, rates []rateModel.RateCard) int64 {
	days := checkOut.YearDay() - checkIn.YearDay()

	var unit float64

	for _, rate := range rates {
		if rate.RoomType != roomType || rate.BathroomType != bathroomType {
			continue
		}

		if days > 30 && rate.DurationType == rateModel.DurationTypeMonthly {
			unit = float64(days) * float64(rate.Cost)

			break
		}

		if days < 30 && rate.DurationType == rateModel.DurationTypeDaily {
			unit = float64(rate.Cost)

			break
		}
	}

	return int64(unit * float64(days))
}

// StayLengthDays returns the day-of-year span used by ResolveDue.
func StayLengthDays(checkIn, checkOut time.Time) int {
	return checkOut.YearDay() - checkIn.YearDay()
}
