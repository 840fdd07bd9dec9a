package main

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	authsvc "github.com/munkhjinod/erxes-api/internal/api/auth/service"
	boardmodels "github.com/munkhjinod/erxes-api/internal/api/board/models"
	"github.com/munkhjinod/erxes-api/internal/logger"
)

// InitDefaultData seed các permission của hệ thống board vào database.
// Chạy được nhiều lần, permission đã tồn tại sẽ được bỏ qua
func InitDefaultData() {
	log := logger.GetAppLogger()

	permissionService, err := authsvc.NewPermissionService()
	if err != nil {
		log.Fatalf("Failed to initialize permission service: %v", err)
	}

	ctx := context.Background()
	created := 0
	for _, action := range boardmodels.AllPermissionActions() {
		exists, err := permissionService.DocumentExists(ctx, bson.M{"name": action})
		if err != nil {
			log.Fatalf("Failed to check permission %s: %v", action, err)
		}
		if exists {
			continue
		}

		_, err = permissionService.InsertOne(ctx, authmodels.Permission{
			Name:     action,
			Describe: fmt.Sprintf("Quyền %s trên board item", action),
			Category: "board",
			Group:    permissionGroup(action),
		})
		if err != nil {
			log.Fatalf("Failed to seed permission %s: %v", action, err)
		}
		created++
	}

	log.Infof("Permissions seeded (%d new)", created)
}

// permissionGroup suy ra nhóm permission từ tên action (dealsAdd -> deals)
func permissionGroup(action string) string {
	for _, itemType := range boardmodels.AllItemTypes {
		prefix := string(itemType) + "s"
		if strings.HasPrefix(action, prefix) {
			return prefix
		}
	}
	return "board"
}
