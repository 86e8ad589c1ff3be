package models

// DashboardStats is the aggregate payload from GET /api/analytics/dashboard.
type DashboardStats struct {
	Products       ProductStats `json:"products"`
	Orders         OrderStats   `json:"orders"`
	Reviews        ReviewStats  `json:"reviews"`
	RecentOrders   []Order      `json:"recent_orders"`
	PendingReviews []Review     `json:"pending_reviews"`
}

type ProductStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

type OrderStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

type ReviewStats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
}
