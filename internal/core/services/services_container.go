package services

import (
	"github.com/SscSPs/mobilepos_backend/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/mobilepos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mobilepos_backend/internal/core/ports/services"
	"github.com/SscSPs/mobilepos_backend/internal/platform/config"
)

// Gateways bundles the outbound collaborators. Archiver may be nil.
type Gateways struct {
	Catalog  gateways.CatalogGateway
	Tickets  gateways.TicketGateway
	Archiver gateways.FileArchiver
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gw Gateways) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// checkout reads the shop rate through the settings service
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Checkout = NewCheckoutService(container.Settings, gw.Tickets)

	importOpts := []ImportOption{WithMaxBytes(cfg.ImportMaxBytes)}
	if gw.Archiver != nil {
		importOpts = append(importOpts, WithArchiver(gw.Archiver))
	}
	container.Import = NewImportService(gw.Catalog, repos.ImportBatchRepo, importOpts...)

	return container
}
