package models

// AdminStats is the summary payload for the admin dashboard.
type AdminStats struct {
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Payments int64   `json:"payments"`
	Revenue  float64 `json:"revenue"`
}

// CategoryStat is one row of the per-category order breakdown.
type CategoryStat struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}
