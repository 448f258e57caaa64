package domain

// Trip is a user's logged booking event referencing a Ride snapshot.
// (UserID, RideID, Date, Time) is unique.
type Trip struct {
	ID     int64
	UserID int64
	RideID int64
	Date   string // "2006-01-02"
	Time   string // "15:04"
}

// Comparison is one entry of a user's trip history: the trip's destination and
// timestamp together with the cheapest provider of its ride.
type Comparison struct {
	Destination string
	Date        string
	Time        string
	Provider    Provider
	Price       float64
}
