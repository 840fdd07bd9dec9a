// Package dto định nghĩa dữ liệu vào của các API bảng Kanban
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoardCreateInput dữ liệu tạo board mới
type BoardCreateInput struct {
	Name string `json:"name" validate:"required,no_xss"`
}

// PipelineCreateInput dữ liệu tạo pipeline mới
type PipelineCreateInput struct {
	Name    string             `json:"name" validate:"required,no_xss"`
	BoardID primitive.ObjectID `json:"boardId" validate:"required"`
}

// PipelineWatchInput bật/tắt theo dõi một pipeline
type PipelineWatchInput struct {
	PipelineID primitive.ObjectID `json:"pipelineId" validate:"required"`
	IsAdd      bool               `json:"isAdd"`
}

// StageCreateInput dữ liệu tạo stage mới
type StageCreateInput struct {
	Name       string             `json:"name" validate:"required,no_xss"`
	PipelineID primitive.ObjectID `json:"pipelineId" validate:"required"`
	Order      float64            `json:"order"`
}

// LabelCreateInput dữ liệu tạo nhãn mới
type LabelCreateInput struct {
	Name       string             `json:"name" validate:"required,no_xss"`
	ColorCode  string             `json:"colorCode"`
	PipelineID primitive.ObjectID `json:"pipelineId" validate:"required"`
}
