package budget

import (
	dbt "yolo/db/db"
)

// CategoryShare is one slice of a budget: the amount planned for a category
// and its share of the whole.
type CategoryShare struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Summary is the computed view of a trip budget.
type Summary struct {
	TripID    int64           `json:"tripId"`
	Total     float64         `json:"total"`
	PerPerson float64         `json:"perPerson"`
	Items     []CategoryShare `json:"items"`
}

// Total sums the four planning categories. The stored total field is caller
// input and may lag behind, so the computed value is authoritative here.
func Total(b *dbt.Budget) float64 {
	return b.Accommodation + b.Food + b.Transport + b.Others
}

// Breakdown returns the per-category shares in a fixed display order.
// Percentages are 0 when the whole budget is 0.
func Breakdown(b *dbt.Budget) []CategoryShare {
	total := Total(b)
	items := []CategoryShare{
		{Category: "accommodation", Amount: b.Accommodation},
		{Category: "food", Amount: b.Food},
		{Category: "transport", Amount: b.Transport},
		{Category: "others", Amount: b.Others},
	}
	for i := range items {
		if total > 0 {
			items[i].Percentage = items[i].Amount / total * 100
		}
	}
	return items
}

// PerPersonShare divides the total across the travellers. A people count
// below one means the whole amount falls on a single person.
func PerPersonShare(total float64, peopleCount int) float64 {
	if peopleCount < 1 {
		return total
	}
	return total / float64(peopleCount)
}

// Summarize combines the full computed view for a budget and its trip's
// people count.
func Summarize(b *dbt.Budget, peopleCount int) Summary {
	total := Total(b)
	return Summary{
		TripID:    b.TripID,
		Total:     total,
		PerPerson: PerPersonShare(total, peopleCount),
		Items:     Breakdown(b),
	}
}
