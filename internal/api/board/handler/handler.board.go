// Package handler xử lý các request HTTP của domain bảng Kanban.
package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/munkhjinod/erxes-api/internal/api/base/handler"
	boarddto "github.com/munkhjinod/erxes-api/internal/api/board/dto"
	boardsvc "github.com/munkhjinod/erxes-api/internal/api/board/service"
	"github.com/munkhjinod/erxes-api/internal/api/middleware"
	"github.com/munkhjinod/erxes-api/internal/common"
)

// BoardHandler xử lý các request về board, pipeline, stage và nhãn
type BoardHandler struct {
	boardService    *boardsvc.BoardService
	pipelineService *boardsvc.PipelineService
	stageService    *boardsvc.StageService
	labelService    *boardsvc.LabelService
}

// NewBoardHandler tạo handler board mới
func NewBoardHandler() (*BoardHandler, error) {
	boardService, err := boardsvc.NewBoardService()
	if err != nil {
		return nil, err
	}
	pipelineService, err := boardsvc.NewPipelineService()
	if err != nil {
		return nil, err
	}
	stageService, err := boardsvc.NewStageService()
	if err != nil {
		return nil, err
	}
	labelService, err := boardsvc.NewLabelService()
	if err != nil {
		return nil, err
	}

	return &BoardHandler{
		boardService:    boardService,
		pipelineService: pipelineService,
		stageService:    stageService,
		labelService:    labelService,
	}, nil
}

// HandleCreateBoard tạo board mới
func (h *BoardHandler) HandleCreateBoard(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			basehdl.HandleResponse(c, nil, common.ErrUnauthenticated)
			return nil
		}

		var input boarddto.BoardCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		board, err := h.boardService.Create(c.Context(), input.Name, user.ID)
		basehdl.HandleResponse(c, board, err)
		return nil
	})
}

// HandleCreatePipeline tạo pipeline mới trong một board
func (h *BoardHandler) HandleCreatePipeline(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			basehdl.HandleResponse(c, nil, common.ErrUnauthenticated)
			return nil
		}

		var input boarddto.PipelineCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		// Board phải tồn tại trước
		if _, err := h.boardService.FindOneById(c.Context(), input.BoardID); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		pipeline, err := h.pipelineService.Create(c.Context(), input.Name, input.BoardID, user.ID)
		basehdl.HandleResponse(c, pipeline, err)
		return nil
	})
}

// HandleWatchPipeline bật/tắt theo dõi một pipeline cho người đang đăng nhập
func (h *BoardHandler) HandleWatchPipeline(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			basehdl.HandleResponse(c, nil, common.ErrUnauthenticated)
			return nil
		}

		var input boarddto.PipelineWatchInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err := h.pipelineService.Watch(c.Context(), input.PipelineID, user.ID, input.IsAdd)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleCreateStage tạo stage mới trong một pipeline
func (h *BoardHandler) HandleCreateStage(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			basehdl.HandleResponse(c, nil, common.ErrUnauthenticated)
			return nil
		}

		var input boarddto.StageCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		if _, err := h.pipelineService.FindOneById(c.Context(), input.PipelineID); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		stage, err := h.stageService.Create(c.Context(), input.Name, input.PipelineID, input.Order)
		basehdl.HandleResponse(c, stage, err)
		return nil
	})
}

// HandleCreateLabel tạo nhãn mới trong một pipeline
func (h *BoardHandler) HandleCreateLabel(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			basehdl.HandleResponse(c, nil, common.ErrUnauthenticated)
			return nil
		}

		var input boarddto.LabelCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		label, err := h.labelService.Create(c.Context(), input.Name, input.ColorCode, input.PipelineID, user.ID)
		basehdl.HandleResponse(c, label, err)
		return nil
	})
}

// HandleListPipelines liệt kê pipeline của một board
func (h *BoardHandler) HandleListPipelines(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		boardID, err := primitive.ObjectIDFromHex(c.Params("boardId"))
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}

		pipelines, err := h.pipelineService.FindByBoard(c.Context(), boardID)
		basehdl.HandleResponse(c, pipelines, err)
		return nil
	})
}

// HandleListStages liệt kê stage của một pipeline theo thứ tự
func (h *BoardHandler) HandleListStages(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		pipelineID, err := primitive.ObjectIDFromHex(c.Params("pipelineId"))
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}

		stages, err := h.stageService.FindByPipeline(c.Context(), pipelineID)
		basehdl.HandleResponse(c, stages, err)
		return nil
	})
}
