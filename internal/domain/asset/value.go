package asset

import "time"

const daysPerYear = 365

// CurrentValue computes the depreciated value of an asset at a point in
// time. Depreciation is continuous (elapsed time over 365-day years, not
// calendar-aligned) and the value never goes below zero. Without a
// purchase date, price, or rate there is nothing to depreciate and the
// purchase price is returned unchanged.
func CurrentValue(a Asset, now time.Time) float64 {
	if a.PurchaseDate == nil || a.PurchasePrice == 0 || a.DepreciationRate == nil || *a.DepreciationRate == 0 {
		return a.PurchasePrice
	}

	yearsElapsed := now.Sub(*a.PurchaseDate).Hours() / (24 * daysPerYear)
	if yearsElapsed < 0 {
		yearsElapsed = 0
	}

	depreciation := a.PurchasePrice * (*a.DepreciationRate / 100) * yearsElapsed
	value := a.PurchasePrice - depreciation
	if value < 0 {
		return 0
	}
	return value
}
