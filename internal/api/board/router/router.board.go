package router

import (
	"github.com/gofiber/fiber/v3"

	boardhdl "github.com/munkhjinod/erxes-api/internal/api/board/handler"
	"github.com/munkhjinod/erxes-api/internal/api/middleware"
	"github.com/munkhjinod/erxes-api/internal/api/router"
)

// Register đăng ký các route cho bảng, pipeline, stage, nhãn và thẻ công việc.
// Tất cả đều yêu cầu đăng nhập; quyền trên từng thao tác thẻ do
// tầng service kiểm tra theo loại thẻ
func Register(v1 fiber.Router, _ *router.Router) error {
	boardHandler, err := boardhdl.NewBoardHandler()
	if err != nil {
		return err
	}
	itemHandler, err := boardhdl.NewItemHandler()
	if err != nil {
		return err
	}

	authManager, err := middleware.NewAuthManager()
	if err != nil {
		return err
	}
	protected := []fiber.Handler{authManager.Authenticate}

	router.RegisterRouteWithMiddleware(v1, "/boards", "POST", "/", protected, boardHandler.HandleCreateBoard)
	router.RegisterRouteWithMiddleware(v1, "/boards", "GET", "/:boardId/pipelines", protected, boardHandler.HandleListPipelines)
	router.RegisterRouteWithMiddleware(v1, "/pipelines", "POST", "/", protected, boardHandler.HandleCreatePipeline)
	router.RegisterRouteWithMiddleware(v1, "/pipelines", "POST", "/watch", protected, boardHandler.HandleWatchPipeline)
	router.RegisterRouteWithMiddleware(v1, "/pipelines", "GET", "/:pipelineId/stages", protected, boardHandler.HandleListStages)
	router.RegisterRouteWithMiddleware(v1, "/stages", "POST", "/", protected, boardHandler.HandleCreateStage)
	router.RegisterRouteWithMiddleware(v1, "/labels", "POST", "/", protected, boardHandler.HandleCreateLabel)

	// Thao tác trên thẻ: :type là deal/ticket/task/growthHack
	// /:type/order phải đăng ký trước /:type/:id để không bị :id nuốt mất
	router.RegisterRouteWithMiddleware(v1, "/items", "POST", "/:type", protected, itemHandler.HandleAddItem)
	router.RegisterRouteWithMiddleware(v1, "/items", "PUT", "/:type/order", protected, itemHandler.HandleUpdateOrder)
	router.RegisterRouteWithMiddleware(v1, "/items", "GET", "/:type/:id", protected, itemHandler.HandleGetItem)
	router.RegisterRouteWithMiddleware(v1, "/items", "PUT", "/:type/:id", protected, itemHandler.HandleEditItem)
	router.RegisterRouteWithMiddleware(v1, "/items", "PUT", "/:type/:id/change", protected, itemHandler.HandleChangeItem)
	router.RegisterRouteWithMiddleware(v1, "/items", "PUT", "/:type/:id/watch", protected, itemHandler.HandleWatchItem)
	router.RegisterRouteWithMiddleware(v1, "/items", "DELETE", "/:type/:id", protected, itemHandler.HandleRemoveItem)

	return nil
}
