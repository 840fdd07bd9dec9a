// Package models - Product thuộc domain product.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product sản phẩm được tham chiếu từ productsData của deal.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Code        string             `json:"code" bson:"code" index:"unique"`
	Type        string             `json:"type" bson:"type"`
	Description string             `json:"description" bson:"description"`
	UnitPrice   float64            `json:"unitPrice" bson:"unitPrice"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
