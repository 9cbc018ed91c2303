package entity

// RuleType describes which product signal a pricing rule reacts to.
type RuleType string

const (
	// RuleTypeExpirationBased triggers when a product is close to its expiration date.
	RuleTypeExpirationBased RuleType = "expiration_based"
	// RuleTypeAgeBased is storable but not evaluated yet.
	RuleTypeAgeBased RuleType = "age_based"
	// RuleTypeDemandBased is storable but not evaluated yet.
	RuleTypeDemandBased RuleType = "demand_based"
	// RuleTypeManual is storable but not evaluated yet.
	RuleTypeManual RuleType = "manual"
)

// String returns the string representation of the RuleType.
func (r RuleType) String() string {
	return string(r)
}

// IsValid checks if the RuleType is a valid value.
func (r RuleType) IsValid() bool {
	switch r {
	case RuleTypeExpirationBased, RuleTypeAgeBased, RuleTypeDemandBased, RuleTypeManual:
		return true
	default:
		return false
	}
}
