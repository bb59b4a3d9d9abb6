package schema

import (
	"errors"
	"fmt"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/pajkicdj/POC-user-product-flow/analytics/domain"
)

var ErrDuplicateField = errors.New("schema: duplicate field")

// Field pairs a reporting API field id with its output column label.
type Field struct {
	ID    string
	Label string
}

type column struct {
	index int
	label string
}

// Schema is an ordered field id -> column table. Insertion order is column order.
type Schema struct {
	columns *orderedmap.OrderedMap[string, column]
}

// Default is the product funnel column table.
func Default() *Schema {
	s, _ := New(
		Field{ID: "ga:productSku", Label: "Product SKU"},
		Field{ID: "ga:dimension1", Label: "UserId"},
		Field{ID: "ga:productDetailViews", Label: "View pdp"},
		Field{ID: "ga:metric2", Label: "Add to wishlist"},
		Field{ID: "ga:productAddsToCart", Label: "Add to cart"},
		Field{ID: "ga:productCheckouts", Label: "Checkout product"},
		Field{ID: "ga:productRemovesFromCart", Label: "Removes product from cart"},
	)

	return s
}

func New(fields ...Field) (*Schema, error) {
	columns := orderedmap.NewOrderedMapWithCapacity[string, column](len(fields))

	for i, f := range fields {
		if columns.Has(f.ID) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.ID)
		}

		columns.Set(f.ID, column{index: i, label: f.Label})
	}

	return &Schema{columns: columns}, nil
}

// Width is the number of output columns.
func (s *Schema) Width() int {
	return s.columns.Len()
}

// IndexOf returns the output column of id.
func (s *Schema) IndexOf(id string) (int, error) {
	c, ok := s.columns.Get(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownField, id)
	}

	return c.index, nil
}

// LabelOf returns the column label of id, or id itself when it is not in the table.
func (s *Schema) LabelOf(id string) string {
	if c, ok := s.columns.Get(id); ok {
		return c.label
	}

	return id
}

func (s *Schema) Fields() []Field {
	fields := make([]Field, 0, s.columns.Len())

	for id, c := range s.columns.AllFromFront() {
		fields = append(fields, Field{ID: id, Label: c.label})
	}

	return fields
}

func (s *Schema) Labels() []string {
	labels := make([]string, 0, s.columns.Len())

	for c := range s.columns.Values() {
		labels = append(labels, c.label)
	}

	return labels
}
