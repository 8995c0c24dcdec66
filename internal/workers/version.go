// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/models"
)

// VersionProbe logs a warning when the client and server builds differ.
// Unknown versions on either side are not compared.
type VersionProbe struct {
	server    VersionSource
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func NewVersionProbe(server VersionSource, buildInfo models.AppBuildInfo, log *logger.Logger) *VersionProbe {
	return &VersionProbe{server: server, buildInfo: buildInfo, logger: log}
}

func (v *VersionProbe) Name() string { return "version-probe" }

func (v *VersionProbe) Run(ctx context.Context) error {
	serverVersion, err := v.server.ServerVersion(ctx)
	if err != nil {
		return err
	}
	serverVersion = strings.TrimSpace(serverVersion)

	if serverVersion == "" || serverVersion == models.NotAvailable || !v.buildInfo.HasVersion() {
		return nil
	}
	if serverVersion != v.buildInfo.BuildVersion() {
		v.logger.Warn().
			Str("client_version", v.buildInfo.BuildVersion()).
			Str("server_version", serverVersion).
			Msg("client and server versions differ")
	}
	return nil
}
