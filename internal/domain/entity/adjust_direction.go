package entity

// AdjustDirection selects whether a bulk adjustment raises or lowers prices.
type AdjustDirection string

const (
	// AdjustIncrease raises prices.
	AdjustIncrease AdjustDirection = "increase"
	// AdjustDecrease lowers prices.
	AdjustDecrease AdjustDirection = "decrease"
)

// String returns the string representation of the AdjustDirection.
func (d AdjustDirection) String() string {
	return string(d)
}

// IsValid checks if the AdjustDirection is a valid value.
func (d AdjustDirection) IsValid() bool {
	return d == AdjustIncrease || d == AdjustDecrease
}
