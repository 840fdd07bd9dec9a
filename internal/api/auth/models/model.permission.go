// Package models - Permission thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission quyền trong hệ thống.
// Name là action dạng "<itemType>s<Mutation>" (ví dụ: dealsAdd, ticketsEdit).
type Permission struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	Describe  string             `json:"describe" bson:"describe"`
	Category  string             `json:"category" bson:"category"`
	Group     string             `json:"group" bson:"group"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
