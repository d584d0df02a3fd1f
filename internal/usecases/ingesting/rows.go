package ingesting

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

var (
	facebookColumns = []string{"comments", "date", "likes", "reach", "shares"}
	tiktokColumns   = []string{"comments", "date", "likes", "shares", "views"}
	salesColumns    = []string{"date", "price", "product id", "product name", "quantity sold", "revenue"}
)

// facebookRows keys each row by post_id, then post_url, then a generated id,
// and keeps the last row of every (date, key) pair.
func facebookRows(t Table) ([]domain.FacebookRow, error) {
	if missing := t.missing(facebookColumns); len(missing) > 0 {
		return nil, missingColumnsError("Facebook", facebookColumns, missing)
	}

	keyColumn := ""
	switch {
	case t.has("post_id"):
		keyColumn = "post_id"
	case t.has("post_url"):
		keyColumn = "post_url"
	}

	rows := make([]domain.FacebookRow, 0, len(t.Rows))
	for i, raw := range t.Rows {
		date, err := parseDate(raw["date"], i)
		if err != nil {
			return nil, err
		}

		key := ""
		if keyColumn != "" {
			key = cellString(raw[keyColumn])
		}
		if key == "" {
			if key, err = utils.GenerateID(); err != nil {
				return nil, err
			}
		}

		rows = append(rows, domain.FacebookRow{
			Date:     date,
			PostID:   key,
			Likes:    utils.ToCount(raw["likes"]),
			Comments: utils.ToCount(raw["comments"]),
			Shares:   utils.ToCount(raw["shares"]),
			Reach:    utils.ToCount(raw["reach"]),
		})
	}

	type postKey struct {
		date time.Time
		post string
	}
	last := make(map[postKey]int, len(rows))
	for i, r := range rows {
		last[postKey{r.Date, r.PostID}] = i
	}

	deduped := make([]domain.FacebookRow, 0, len(last))
	for i, r := range rows {
		if last[postKey{r.Date, r.PostID}] == i {
			deduped = append(deduped, r)
		}
	}

	if dropped := len(rows) - len(deduped); dropped > 0 {
		logrus.WithField("duplicates", dropped).Info("Dropped duplicate Facebook posts")
	}
	return deduped, nil
}

// tiktokRows sums the rows of each day, oldest day first.
func tiktokRows(t Table) ([]domain.TikTokRow, error) {
	if missing := t.missing(tiktokColumns); len(missing) > 0 {
		return nil, missingColumnsError("TikTok", tiktokColumns, missing)
	}

	byDay := make(map[time.Time]*domain.TikTokRow)
	for i, raw := range t.Rows {
		date, err := parseDate(raw["date"], i)
		if err != nil {
			return nil, err
		}

		row, ok := byDay[date]
		if !ok {
			row = &domain.TikTokRow{Date: date}
			byDay[date] = row
		}
		row.Views = utils.AddCounts(row.Views, utils.ToCount(raw["views"]))
		row.Likes = utils.AddCounts(row.Likes, utils.ToCount(raw["likes"]))
		row.Comments = utils.AddCounts(row.Comments, utils.ToCount(raw["comments"]))
		row.Shares = utils.AddCounts(row.Shares, utils.ToCount(raw["shares"]))
	}

	rows := make([]domain.TikTokRow, 0, len(byDay))
	for _, row := range byDay {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

// salesBatch splits sales rows into the distinct products and one sale per
// row. A product id seen twice keeps its last name.
func salesBatch(t Table) (domain.SalesBatch, error) {
	if missing := t.missing(salesColumns); len(missing) > 0 {
		return domain.SalesBatch{}, missingColumnsError("Sales", salesColumns, missing)
	}

	batch := domain.SalesBatch{Sales: make([]domain.Sale, 0, len(t.Rows))}
	productIndex := make(map[string]int)

	for i, raw := range t.Rows {
		date, err := parseDate(raw["date"], i)
		if err != nil {
			return domain.SalesBatch{}, err
		}

		productID := cellString(raw["product id"])
		name := cellString(raw["product name"])
		if idx, ok := productIndex[productID]; ok {
			batch.Products[idx].ProductName = name
		} else {
			productIndex[productID] = len(batch.Products)
			batch.Products = append(batch.Products, domain.Product{ProductID: productID, ProductName: name})
		}

		batch.Sales = append(batch.Sales, domain.Sale{
			SaleID:       utils.NewUUID(),
			ProductID:    productID,
			Date:         date,
			QuantitySold: utils.ToFloat(raw["quantity sold"]),
			Price:        utils.ToFloat(raw["price"]),
			Revenue:      utils.ToFloat(raw["revenue"]),
		})
	}

	return batch, nil
}
