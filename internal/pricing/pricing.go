// Package pricing maps service-type names to default unit prices.
package pricing

// DefaultPrice is charged for any service name the table does not know.
const DefaultPrice = 10.00

var standardPrices = map[string]float64{
	"Wash & Fold":     5.00,
	"Dry Cleaning":    12.00,
	"Ironing":         3.00,
	"Stain Removal":   8.00,
	"Express Service": 15.00,
	"Special Care":    20.00,
}

// Table is a pure lookup from service name to unit price. The zero value is
// not useful; build one with NewTable.
type Table struct {
	prices map[string]float64
}

// NewTable builds a table from the standard vocabulary with overrides (from
// configuration) applied on top. Overrides may add new service names.
func NewTable(overrides map[string]float64) *Table {
	prices := make(map[string]float64, len(standardPrices)+len(overrides))
	for name, price := range standardPrices {
		prices[name] = price
	}
	for name, price := range overrides {
		if price >= 0 {
			prices[name] = price
		}
	}
	return &Table{prices: prices}
}

// PriceFor returns the unit price for serviceName, or DefaultPrice when the
// name is unknown. There is no error path.
func (t *Table) PriceFor(serviceName string) float64 {
	if p, ok := t.prices[serviceName]; ok {
		return p
	}
	return DefaultPrice
}

// Known returns the table's vocabulary with prices, used to seed the
// service catalog.
func (t *Table) Known() map[string]float64 {
	out := make(map[string]float64, len(t.prices))
	for name, price := range t.prices {
		out[name] = price
	}
	return out
}
