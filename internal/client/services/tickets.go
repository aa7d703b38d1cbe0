package services

import (
	"context"

	"github.com/lotterich/cli/internal/client/api"
	"github.com/lotterich/cli/internal/client/collection"
	"github.com/lotterich/cli/internal/client/models"
)

// TicketService defines ticket-collection operations for the CLI.
//
// Contract:
//   - List: fetch the whole collection, normalized and newest first.
//   - Add/Update/Delete: run the mutation, then refetch the collection;
//     inputs failing client-side checks never reach the wire.
//
// All methods must honor context cancellation/timeouts.
type TicketService interface {
	List(ctx context.Context) ([]models.Ticket, error)
	Add(ctx context.Context, in models.TicketInput) ([]models.Ticket, error)
	Update(ctx context.Context, id string, in models.TicketInput) ([]models.Ticket, error)
	Delete(ctx context.Context, id string) ([]models.Ticket, error)
}

type ticketService struct {
	api api.Client
}

// NewTicketService constructs a TicketService bound to the given API client.
func NewTicketService(client api.Client) TicketService {
	return &ticketService{api: client}
}

// List fetches the collection. Records written under the older schema are
// normalized here, at the fetch boundary, so everything downstream sees
// only the canonical one.
func (s *ticketService) List(ctx context.Context) ([]models.Ticket, error) {
	tickets, err := s.api.ListTickets(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		tickets[i] = tickets[i].Normalize()
	}
	return collection.SortByDateDesc(tickets), nil
}

func (s *ticketService) Add(ctx context.Context, in models.TicketInput) ([]models.Ticket, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.api.CreateTicket(ctx, in.Sanitized()); err != nil {
		return nil, err
	}
	return s.List(ctx)
}

func (s *ticketService) Update(ctx context.Context, id string, in models.TicketInput) ([]models.Ticket, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.api.UpdateTicket(ctx, id, in.Sanitized()); err != nil {
		return nil, err
	}
	return s.List(ctx)
}

func (s *ticketService) Delete(ctx context.Context, id string) ([]models.Ticket, error) {
	if err := s.api.DeleteTicket(ctx, id); err != nil {
		return nil, err
	}
	return s.List(ctx)
}
