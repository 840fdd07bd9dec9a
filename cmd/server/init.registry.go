package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/munkhjinod/erxes-api/config"
	"github.com/munkhjinod/erxes-api/internal/global"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Permissions,
		global.MongoDB_ColNames.Roles,
		global.MongoDB_ColNames.RolePermissions,
		global.MongoDB_ColNames.UserRoles,
		global.MongoDB_ColNames.Boards,
		global.MongoDB_ColNames.Pipelines,
		global.MongoDB_ColNames.Stages,
		global.MongoDB_ColNames.BoardItems,
		global.MongoDB_ColNames.PipelineLabels,
		global.MongoDB_ColNames.Conformities,
		global.MongoDB_ColNames.Checklists,
		global.MongoDB_ColNames.ActivityLogs,
		global.MongoDB_ColNames.AuditLogs,
		global.MongoDB_ColNames.Notifications,
		global.MongoDB_ColNames.DeliveryQueue,
		global.MongoDB_ColNames.Products,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
