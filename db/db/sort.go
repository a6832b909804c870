package db

import "sort"

// Ordering rules shared by the memory and file backends. The postgres backend
// expresses the same rules in SQL.

// SortReviewsLatest orders reviews by createdAt descending. Ties keep no
// particular relative order.
func SortReviewsLatest(reviews []Review) {
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}

// SortInquiriesLatest orders inquiries by createdAt descending.
func SortInquiriesLatest(inquiries []Inquiry) {
	sort.Slice(inquiries, func(i, j int) bool {
		return inquiries[i].CreatedAt.After(inquiries[j].CreatedAt)
	})
}

// SortFAQsByOrder orders FAQ entries by their order field ascending.
func SortFAQsByOrder(faqs []FAQ) {
	sort.Slice(faqs, func(i, j int) bool {
		return faqs[i].Order < faqs[j].Order
	})
}
