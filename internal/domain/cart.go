package domain

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartStatus string

const (
	CartStatusOpen      CartStatus = "open"
	CartStatusPaid      CartStatus = "paid"
	CartStatusAbandoned CartStatus = "abandoned"
)

const DefaultQuantity = 1

var taxRate = decimal.RequireFromString("0.08")

// CartItem copies the product's display fields and price at the time it was
// added. Later catalog changes never reach an existing item.
type CartItem struct {
	ProductID string  `bson:"product_id" json:"product_id" validate:"required"`
	Quantity  int     `bson:"quantity" json:"quantity" validate:"gte=1"`
	Size      int     `bson:"size" json:"size" validate:"gte=1"`
	Price     float64 `bson:"price" json:"price" validate:"gte=0"`
	Name      string  `bson:"name" json:"name"`
	Image     string  `bson:"image" json:"image"`
	Brand     string  `bson:"brand" json:"brand"`
}

type Cart struct {
	Items    []CartItem         `bson:"items" json:"items" validate:"dive"`
	Status   CartStatus         `bson:"status" json:"status" validate:"oneof=open paid abandoned"`
	Subtotal float64            `bson:"subtotal" json:"subtotal" validate:"gte=0"`
	Tax      float64            `bson:"tax" json:"tax" validate:"gte=0"`
	Total    float64            `bson:"total" json:"total" validate:"gte=0"`
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
}

// NewCartItem snapshots product into a cart line.
func NewCartItem(product Sneaker, quantity, size int) (CartItem, error) {
	item := CartItem{
		ProductID: product.ID.Hex(),
		Quantity:  quantity,
		Size:      size,
		Price:     product.Price,
		Name:      product.Name,
		Image:     product.Image,
		Brand:     product.Brand,
	}
	if err := Validate(item); err != nil {
		return CartItem{}, err
	}
	return item, nil
}

// NewCart builds an open cart holding items with its totals filled in.
func NewCart(items ...CartItem) (Cart, error) {
	cart := Cart{
		Items:  append(make([]CartItem, 0, len(items)), items...),
		Status: CartStatusOpen,
	}
	cart.Subtotal, cart.Tax, cart.Total = ComputeTotals(cart.Items)

	if err := Validate(cart); err != nil {
		return Cart{}, err
	}
	return cart, nil
}

// ComputeTotals returns subtotal, tax and total, each rounded to cents.
func ComputeTotals(items []CartItem) (subtotal, tax, total float64) {
	sum := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}

	sub := sum.Round(2)
	t := sub.Mul(taxRate).Round(2)
	tot := sub.Add(t).Round(2)

	return sub.InexactFloat64(), t.InexactFloat64(), tot.InexactFloat64()
}
