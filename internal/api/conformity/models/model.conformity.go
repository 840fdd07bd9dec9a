// Package models - ConformityEdge thuộc domain conformity.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại entity hợp lệ trong quan hệ conformity
const (
	RelTypeCompany  = "company"
	RelTypeCustomer = "customer"
)

// ConformityEdge cạnh quan hệ nhiều-nhiều giữa một entity chính (deal/ticket/task/growthHack)
// và một entity liên quan (company/customer).
// Bộ bốn (mainType, mainTypeId, relType, relTypeId) là duy nhất (unique index).
type ConformityEdge struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MainType   string             `json:"mainType" bson:"mainType"`
	MainTypeID primitive.ObjectID `json:"mainTypeId" bson:"mainTypeId"`
	RelType    string             `json:"relType" bson:"relType"`
	RelTypeID  primitive.ObjectID `json:"relTypeId" bson:"relTypeId"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
