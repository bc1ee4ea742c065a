package domain

type DurationUnit string

const (
	DurationUnitDay   DurationUnit = "day"
	DurationUnitWeek  DurationUnit = "week"
	DurationUnitMonth DurationUnit = "month"
	DurationUnitYear  DurationUnit = "year"

	// Accelerated units measured in seconds. Used only to exercise the
	// post-expiry rating flow without waiting real calendar time.
	DurationUnitTest10s DurationUnit = "test_10s"
	DurationUnitTest30s DurationUnit = "test_30s"
)

// IsAccelerated reports whether the unit is a seconds-scale test unit.
// Contracts created with an accelerated unit are born already expired.
func (u DurationUnit) IsAccelerated() bool {
	return u == DurationUnitTest10s || u == DurationUnitTest30s
}

// DurationPrice is an owner-set price for renting a listing for one unit
// of the given duration. Unique per (listing, unit).
type DurationPrice struct {
	ID        int32        `json:"id"`
	ListingID int32        `json:"post_id"`
	Unit      DurationUnit `json:"duration_type"`
	Price     int64        `json:"price"`
}
