package service

import (
	"strings"
	"time"

	"shopquote/internal/domain"
	"shopquote/internal/repository"

	"github.com/google/uuid"
)

type customerService struct {
	customers repository.CustomerRepo
}

// NewCustomerService creates a CustomerService over the given repository.
func NewCustomerService(customers repository.CustomerRepo) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) Add(name, phone, email string) (domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Customer{}, domain.Invalid("customer name is required")
	}

	c := domain.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     strings.TrimSpace(phone),
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.customers.Add(c)
	return c, nil
}

func (s *customerService) List() []domain.Customer {
	return s.customers.List()
}

func (s *customerService) Search(query string) []domain.Customer {
	return s.customers.Search(query)
}

func (s *customerService) Find(id string) (domain.Customer, bool) {
	return s.customers.Find(id)
}

func (s *customerService) Remove(id string) {
	s.customers.Remove(id)
}
