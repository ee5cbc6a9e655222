package service

import (
	"github.com/MKhiriev/rexora-cms/internal/adapter"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/store"
)

type ClientServices struct {
	SessionService SessionService
	ContentService ContentService
	AdminService   AdminService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(localStore.SessionStorage, serverAdapter, logger)

	return &ClientServices{
		SessionService: sessionSvc,
		ContentService: NewClientContentService(serverAdapter, logger),
		AdminService:   NewClientAdminService(serverAdapter, sessionSvc, logger),
	}
}
