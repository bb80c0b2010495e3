package coffee

import "go.mongodb.org/mongo-driver/bson/primitive"

// Coffee is a catalogue entry. Every attribute is optional; absent ones are
// omitted from storage and from responses.
type Coffee struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`
	Quantity *Number            `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Supplier string             `json:"supplier,omitempty" bson:"supplier,omitempty"`
	Taste    string             `json:"taste,omitempty" bson:"taste,omitempty"`
	Price    *Number            `json:"price,omitempty" bson:"price,omitempty"`
	Details  string             `json:"details,omitempty" bson:"details,omitempty"`
	Photo    string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Email    string             `json:"email,omitempty" bson:"email,omitempty"`
}

// NewCoffee is the POST /coffees body.
type NewCoffee struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity" binding:"omitempty,min=0"`
	Supplier string   `json:"supplier"`
	Taste    string   `json:"taste"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Details  string   `json:"details"`
	Photo    string   `json:"photo"`
	Email    string   `json:"email" binding:"omitempty,email"`
}

// Coffee converts the request into a document without an identifier.
func (n NewCoffee) Coffee() *Coffee {
	return &Coffee{
		Name:     n.Name,
		Quantity: NumberFrom(n.Quantity),
		Supplier: n.Supplier,
		Taste:    n.Taste,
		Price:    NumberFrom(n.Price),
		Details:  n.Details,
		Photo:    n.Photo,
		Email:    n.Email,
	}
}

// Replacement is the PUT /coffees/:id body. All seven fields are written on
// update; a nil field is stored as null. Email is never touched by PUT.
type Replacement struct {
	Name     *string  `json:"name"`
	Quantity *float64 `json:"quantity" binding:"omitempty,min=0"`
	Supplier *string  `json:"supplier"`
	Taste    *string  `json:"taste"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Details  *string  `json:"details"`
	Photo    *string  `json:"photo"`
}

// Apply overwrites the replaceable fields of c. Email and ID are kept.
func (r Replacement) Apply(c *Coffee) {
	c.Name = deref(r.Name)
	c.Quantity = NumberFrom(r.Quantity)
	c.Supplier = deref(r.Supplier)
	c.Taste = deref(r.Taste)
	c.Price = NumberFrom(r.Price)
	c.Details = deref(r.Details)
	c.Photo = deref(r.Photo)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
