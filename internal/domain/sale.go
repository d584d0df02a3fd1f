package domain

import "time"

type Product struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
}

type Sale struct {
	SaleID       string    `json:"sale_id"`
	ProductID    string    `json:"product_id"`
	Date         time.Time `json:"date"`
	QuantitySold float64   `json:"quantity_sold"`
	Price        float64   `json:"price"`
	Revenue      float64   `json:"revenue"`
}

type TopProduct struct {
	ProductName string  `json:"product_name"`
	Sales       float64 `json:"sales"`
}

// DailyRevenue is the revenue summed over one calendar day.
type DailyRevenue struct {
	Date    time.Time
	Revenue float64
}

// DailyEngagement is the reach and engagement summed over one calendar day.
type DailyEngagement struct {
	Date       time.Time
	Reach      int64
	Engagement int64
}

type TikTokRow struct {
	Date     time.Time
	Views    int64
	Likes    int64
	Comments int64
	Shares   int64
}

type FacebookRow struct {
	Date     time.Time
	PostID   string
	Likes    int64
	Comments int64
	Shares   int64
	Reach    int64
}

// SalesBatch is the normalized content of one sales upload.
type SalesBatch struct {
	Products []Product
	Sales    []Sale
}
