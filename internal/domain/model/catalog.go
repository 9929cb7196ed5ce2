package model

import "fmt"

// CatalogItem is a purchasable gift-certificate position, already
// localized: Name and URL match the requested language, Price carries
// the currency suffix for that language.
type CatalogItem struct {
	ID    int64
	Name  string
	Price string
	URL   string
}

// Item is the storage-side representation with both localizations.
type Item struct {
	ID          int64
	Number      int64
	Name        string
	EnglishName string
	PriceRubles int64
	PriceEuros  int64
	RussianURL  string
	EnglishURL  string
	Available   bool
}

// Localize projects the item into the requested language.
func (i *Item) Localize(lang Language) CatalogItem {
	if lang == LanguageEnglish {
		return CatalogItem{
			ID:    i.Number,
			Name:  i.EnglishName,
			Price: formatPrice(i.PriceEuros, "€"),
			URL:   i.EnglishURL,
		}
	}
	return CatalogItem{
		ID:    i.Number,
		Name:  i.Name,
		Price: formatPrice(i.PriceRubles, "₽"),
		URL:   i.RussianURL,
	}
}

func formatPrice(amount int64, currency string) string {
	return fmt.Sprintf("%d %s", amount, currency)
}

// LocalName returns the display name for the requested language.
func (i *Item) LocalName(lang Language) string {
	if lang == LanguageEnglish {
		return i.EnglishName
	}
	return i.Name
}
