// Package profit implements the sale profitability formulas. All amounts
// are in DZD; weights are in kilograms.
package profit

// Rates holds the tunable constants of the profit formulas.
type Rates struct {
	// PerKgRate is the delivery surcharge applied per kilogram of weight.
	PerKgRate float64
	// FixedFee is subtracted from the gross profit of every sale.
	FixedFee float64
}

// DefaultRates returns the rates the business has always operated with.
func DefaultRates() Rates {
	return Rates{PerKgRate: 50, FixedFee: 500}
}

// DeliveryTotal is the full delivery cost of a sale: the weight surcharge
// plus the courier's delivery price.
func (r Rates) DeliveryTotal(weight, deliveryPrice float64) float64 {
	return weight*r.PerKgRate + deliveryPrice
}

// GrossProfit is what remains of the selling price after delivery and the
// purchase cost.
func (r Rates) GrossProfit(sellingPrice, deliveryTotal, purchasePrice float64) float64 {
	return (sellingPrice - deliveryTotal) - purchasePrice
}

// NetProfit is the gross profit minus the fixed per-sale fee.
func (r Rates) NetProfit(grossProfit float64) float64 {
	return grossProfit - r.FixedFee
}

// Breakdown holds every derived amount for one sale.
type Breakdown struct {
	DeliveryTotal float64
	GrossProfit   float64
	NetProfit     float64
}

// Compute derives the full breakdown from a sale's price snapshot.
func (r Rates) Compute(sellingPrice, purchasePrice, weight, deliveryPrice float64) Breakdown {
	dt := r.DeliveryTotal(weight, deliveryPrice)
	gp := r.GrossProfit(sellingPrice, dt, purchasePrice)
	return Breakdown{
		DeliveryTotal: dt,
		GrossProfit:   gp,
		NetProfit:     r.NetProfit(gp),
	}
}
