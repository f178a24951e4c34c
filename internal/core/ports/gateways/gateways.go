// Package gateways declares the outbound collaborators of the services: the catalog and
// ticket endpoints of the shop backend and the file archive.
package gateways

import (
	"context"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
)

// CatalogGateway creates inventory entities, one call per entity.
// authToken is the caller's bearer token, forwarded as is.
type CatalogGateway interface {
	CreateProduct(ctx context.Context, authToken string, product domain.Product) error
	CreatePart(ctx context.Context, authToken string, part domain.Part) error
}

// TicketGateway persists finalized sales.
type TicketGateway interface {
	CreateTicket(ctx context.Context, authToken string, req domain.TicketRequest) (*domain.Ticket, error)
}

// FileArchiver keeps a copy of uploaded import files. It returns the object location.
type FileArchiver interface {
	Archive(ctx context.Context, name string, data []byte) (string, error)
}
