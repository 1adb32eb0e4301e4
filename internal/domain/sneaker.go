package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const DefaultRating = 4.5

// Sneaker is a catalog entry. It is never updated after insertion.
type Sneaker struct {
	Name        string             `bson:"name" json:"name" validate:"required"`
	Brand       string             `bson:"brand" json:"brand" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Image       string             `bson:"image" json:"image" validate:"required,url"`
	Colorway    *string            `bson:"colorway" json:"colorway"`
	Description *string            `bson:"description" json:"description"`
	Sizes       []int              `bson:"sizes" json:"sizes"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
	Rating      float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
}

// SneakerParams holds the caller-supplied fields of a Sneaker. Nil pointers and
// empty optional strings fall back to the catalog defaults.
type SneakerParams struct {
	Name        string
	Brand       string
	Price       float64
	Image       string
	Colorway    string
	Description string
	Sizes       []int
	InStock     *bool
	Rating      *float64
}

// DefaultSizes returns the US sizes offered when none are specified.
func DefaultSizes() []int {
	return []int{6, 7, 8, 9, 10, 11, 12}
}

// NewSneaker applies defaults to p and validates the result.
func NewSneaker(p SneakerParams) (Sneaker, error) {
	s := Sneaker{
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       p.Price,
		Image:       p.Image,
		Colorway:    optional(p.Colorway),
		Description: optional(p.Description),
		Sizes:       p.Sizes,
		InStock:     true,
		Rating:      DefaultRating,
	}
	if s.Sizes == nil {
		s.Sizes = DefaultSizes()
	}
	if p.InStock != nil {
		s.InStock = *p.InStock
	}
	if p.Rating != nil {
		s.Rating = *p.Rating
	}

	if err := Validate(s); err != nil {
		return Sneaker{}, err
	}
	return s, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
