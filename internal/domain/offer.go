package domain

// Offer is a promotional entry published by a ride-hailing company.
// Offers are independent of users, rides and trips.
type Offer struct {
	Number      int64
	Company     string
	Description string
}
