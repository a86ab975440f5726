package amazon

import (
	"context"

	"github.com/mkurbatov/amazon-search-cache/internal/domain"
	"github.com/mkurbatov/amazon-search-cache/internal/ports"
)

// Формат запроса/ответа PA-API 5.0 SearchItems.
// Описана только используемая часть ответа.

type searchRequest struct {
	Keywords    string   `json:"Keywords"`
	ItemCount   int      `json:"ItemCount"`
	PartnerTag  string   `json:"PartnerTag"`
	PartnerType string   `json:"PartnerType"`
	Marketplace string   `json:"Marketplace"`
	Resources   []string `json:"Resources"`
}

type searchResponse struct {
	SearchResult struct {
		Items []paItem `json:"Items"`
	} `json:"SearchResult"`
	Errors []apiError `json:"Errors"`
}

type apiError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

type displayValue struct {
	DisplayValue string `json:"DisplayValue"`
}

type paItem struct {
	ASIN          string `json:"ASIN"`
	DetailPageURL string `json:"DetailPageURL"`
	Images        struct {
		Primary struct {
			Large struct {
				URL string `json:"URL"`
			} `json:"Large"`
		} `json:"Primary"`
	} `json:"Images"`
	ItemInfo struct {
		Title      displayValue `json:"Title"`
		ByLineInfo struct {
			Brand        displayValue `json:"Brand"`
			Manufacturer displayValue `json:"Manufacturer"`
		} `json:"ByLineInfo"`
		ManufactureInfo struct {
			Model displayValue `json:"Model"`
		} `json:"ManufactureInfo"`
	} `json:"ItemInfo"`
	Offers struct {
		Listings []paListing `json:"Listings"`
	} `json:"Offers"`
}

type paListing struct {
	Price struct {
		Amount        *float64 `json:"Amount"`
		Currency      string   `json:"Currency"`
		DisplayAmount string   `json:"DisplayAmount"`
	} `json:"Price"`
	SavingBasis struct {
		Amount *float64 `json:"Amount"`
	} `json:"SavingBasis"`
	DeliveryInfo struct {
		IsPrimeEligible bool `json:"IsPrimeEligible"`
	} `json:"DeliveryInfo"`
	Availability struct {
		Message string `json:"Message"`
	} `json:"Availability"`
}

// mapItems — нормализация выдачи PA-API в доменные карточки.
// Товар без ASIN отбрасывается целиком: без идентификатора запись бесполезна.
func mapItems(ctx context.Context, log ports.Logger, items []paItem) []domain.Product {
	products := make([]domain.Product, 0, len(items))
	for _, it := range items {
		if it.ASIN == "" {
			log.Warnf(ctx, "provider item without ASIN skipped title=%q", it.ItemInfo.Title.DisplayValue)
			continue
		}

		p := domain.Product{
			ASIN:         it.ASIN,
			URL:          it.DetailPageURL,
			Title:        it.ItemInfo.Title.DisplayValue,
			Image:        it.Images.Primary.Large.URL,
			Brand:        it.ItemInfo.ByLineInfo.Brand.DisplayValue,
			Manufacturer: it.ItemInfo.ByLineInfo.Manufacturer.DisplayValue,
			Model:        it.ItemInfo.ManufactureInfo.Model.DisplayValue,
		}

		if len(it.Offers.Listings) > 0 {
			l := it.Offers.Listings[0]
			p.Price = l.Price.Amount
			p.PriceFormatted = l.Price.DisplayAmount
			p.Currency = l.Price.Currency
			p.SavingBasis = l.SavingBasis.Amount
			p.IsPrimeEligible = l.DeliveryInfo.IsPrimeEligible
			p.Availability = l.Availability.Message
		}

		products = append(products, p)
	}
	return products
}
