package services

import "time"

// NextPaidDate applies the paid-date transition for an invoice update.
//
//	unpaid (no paid_date) -> paid : today
//	anything -> unpaid            : nil
//	paid -> paid                  : unchanged
func NextPaidDate(current *time.Time, paid bool, today time.Time) *time.Time {
	switch {
	case !paid:
		return nil
	case current == nil:
		return &today
	default:
		return current
	}
}
