package entity

// TaxConfiguration is the per-tenant tax setup used by the overlay calculator.
type TaxConfiguration struct {
	VATRatePercent           float64 `json:"vat_rate_percent" yaml:"vatRatePercent"`
	VATInclusive             bool    `json:"vat_inclusive" yaml:"vatInclusive"`
	SeniorPWDDiscountEnabled bool    `json:"senior_pwd_discount_enabled" yaml:"seniorPwdDiscountEnabled"`
	// Withholding tax is persisted for compatibility; no price computation reads it.
	WithholdingTaxEnabled     bool    `json:"withholding_tax_enabled" yaml:"withholdingTaxEnabled"`
	WithholdingTaxRatePercent float64 `json:"withholding_tax_rate_percent" yaml:"withholdingTaxRatePercent"`
}
