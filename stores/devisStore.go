package stores

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

// ErrUpdateNotSupported marks the declared-but-unimplemented devis update:
// the backend has no user-side update endpoint yet.
var ErrUpdateNotSupported = errors.New("devis update is not supported by the backend")

// DevisStore maps the backend's quotation records into the view shape for one
// inbound request's session.
type DevisStore struct {
	backend *api.Caller
}

func NewDevisStore(backend *api.Caller) *DevisStore {
	return &DevisStore{backend: backend}
}

// List fetches the session's quotations and maps each record.
func (s *DevisStore) List() ([]models.Devis, error) {
	var records []models.QuotationRecord
	if err := s.backend.Get("/quotations", &records); err != nil {
		return nil, err
	}
	list := make([]models.Devis, 0, len(records))
	for _, record := range records {
		list = append(list, mapQuotation(record))
	}
	return list, nil
}

// Add creates a quotation then refetches the full list; there is no
// optimistic insert.
func (s *DevisStore) Add(req models.DevisRequest) ([]models.Devis, error) {
	if err := s.backend.Post("/quotations", req, nil); err != nil {
		return nil, err
	}
	return s.List()
}

// GetByID returns (nil, nil) on any failure: a missing devis is an absence,
// not an error.
func (s *DevisStore) GetByID(id string) (*models.Devis, error) {
	var record models.QuotationRecord
	if err := s.backend.Get("/quotations/"+id, &record); err != nil {
		log.Println("Failed to get devis by id:", err)
		return nil, nil
	}
	devis := mapQuotation(record)
	return &devis, nil
}

func (s *DevisStore) Update(id string, updates map[string]any) error {
	log.Println("Update devis from user side not yet implemented in backend")
	return ErrUpdateNotSupported
}

// mapQuotation builds the view model: joined requester name parts kept as-is,
// city and address combined into one location string, status lower-cased, and
// nested proposals flattened with their freelancer sub-objects.
func mapQuotation(record models.QuotationRecord) models.Devis {
	serviceName := "Service"
	title := "Demande de devis"
	if record.Service != nil && record.Service.Name != "" {
		serviceName = record.Service.Name
		title = record.Service.Name
	}

	location := record.City
	if record.Address != "" {
		location = fmt.Sprintf("%s, %s", record.City, record.Address)
	}

	devis := models.Devis{
		ID:                strconv.Itoa(record.ID),
		ServiceID:         record.ServiceID,
		ServiceType:       serviceName,
		FirstName:         record.FirstName,
		LastName:          record.LastName,
		Title:             title,
		Description:       record.Description,
		Location:          location,
		PhoneNumber:       record.Phone,
		Email:             record.Email,
		PreferredTimeline: record.PreferredTimeline,
		Status:            strings.ToLower(record.Status),
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}

	for _, proposal := range record.Proposals {
		devis.Proposals = append(devis.Proposals, mapProposal(proposal))
	}
	return devis
}

func mapProposal(record models.QuotationProposalRecord) models.Proposal {
	freelancer := models.ProposalFreelancer{
		ID:   "Unknown",
		Name: "Professional",
	}
	if record.Freelancer != nil {
		freelancer = models.ProposalFreelancer{
			ID:     strconv.Itoa(record.Freelancer.ID),
			Name:   fmt.Sprintf("%s %s", record.Freelancer.FirstName, record.Freelancer.LastName),
			Title:  record.Freelancer.Title,
			Avatar: record.Freelancer.Avatar,
			Rating: record.Freelancer.Rating,
		}
	}
	return models.Proposal{
		ID:         strconv.Itoa(record.ID),
		Price:      record.Price,
		Message:    record.Message,
		Status:     record.Status,
		CreatedAt:  record.CreatedAt,
		Freelancer: freelancer,
	}
}
