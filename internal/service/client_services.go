package service

import (
	"github.com/MKhiriev/go-insight-keeper/internal/adapter"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	CaptureService ClientCaptureService
	HistoryService ClientHistoryService
	AnalysisJob    ClientAnalysisJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	captureSvc := NewClientCaptureService(serverAdapter, localStore.JournalRepository, log)

	return &ClientServices{
		AuthService:    NewClientAuthService(localStore.SessionRepository, serverAdapter, log),
		CaptureService: captureSvc,
		HistoryService: NewClientHistoryService(serverAdapter),
		AnalysisJob:    NewClientAnalysisJob(captureSvc, log),
	}
}
