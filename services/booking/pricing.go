package booking

import "lensbook/models"

// ComputeTotalAmount normalizes a pricing breakdown: the total is always
// max(0, base + charges - discounts + travel fee), whatever the caller sent.
func ComputeTotalAmount(p models.Pricing) float64 {
	total := p.BaseAmount + p.TravelFee
	for _, c := range p.AdditionalCharges {
		total += c.Amount
	}
	for _, d := range p.Discounts {
		total -= d.Amount
	}
	if total < 0 {
		return 0
	}
	return total
}
