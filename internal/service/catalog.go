package service

import (
	"fmt"

	"github.com/fjod/go_cart/sneaker-service/internal/domain"
)

func ptr[T any](v T) *T { return &v }

var seedCatalog = []domain.SneakerParams{
	{
		Name:        "Air Jordan 1 Retro High",
		Brand:       "Nike",
		Price:       180.0,
		Image:       "https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=1200&q=80",
		Colorway:    "Bred",
		Description: "Iconic high-top with premium leather and timeless style.",
		Rating:      ptr(4.8),
	},
	{
		Name:        "Yeezy Boost 350 V2",
		Brand:       "adidas",
		Price:       220.0,
		Image:       "https://images.unsplash.com/photo-1542293787938-c9e299b88054?w=1200&q=80",
		Colorway:    "Zebra",
		Description: "Primeknit upper with Boost cushioning for all-day comfort.",
		Rating:      ptr(4.6),
	},
	{
		Name:        "New Balance 550",
		Brand:       "New Balance",
		Price:       110.0,
		Image:       "https://images.unsplash.com/photo-1603808033192-65fe6f565c95?w=1200&q=80",
		Colorway:    "White/Green",
		Description: "Retro basketball silhouette with modern comfort.",
		Rating:      ptr(4.4),
	},
	{
		Name:        "Nike Air Max 97",
		Brand:       "Nike",
		Price:       175.0,
		Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=1200&q=80",
		Colorway:    "Silver Bullet",
		Description: "Wavy lines and visible Air cushioning for a smooth ride.",
		Rating:      ptr(4.5),
	},
	{
		Name:        "ASICS Gel-Kayano 14",
		Brand:       "ASICS",
		Price:       150.0,
		Image:       "https://images.unsplash.com/photo-1605346476686-c9c5c70c8f47?w=1200&q=80",
		Colorway:    "Metallic Silver",
		Description: "Reissued runner with GEL cushioning and 2000s aesthetics.",
		Rating:      ptr(4.7),
	},
}

// SeedCatalog returns the starter catalog in insertion order.
func SeedCatalog() ([]domain.Sneaker, error) {
	sneakers := make([]domain.Sneaker, 0, len(seedCatalog))
	for _, p := range seedCatalog {
		s, err := domain.NewSneaker(p)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", p.Name, err)
		}
		sneakers = append(sneakers, s)
	}
	return sneakers, nil
}
