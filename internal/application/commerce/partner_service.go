package commerce

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/catalog"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/partner"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerService manages customers and suppliers. Debt is read-only here;
// it only moves as a side effect of invoices, payments and purchases.
type PartnerService struct {
	exec  *executor
	reads TransactionalRepositories
}

// CreateCustomer creates a customer with zero debt
func (s *PartnerService) CreateCustomer(ctx context.Context, tenantID, userID uuid.UUID, input PartyInput) (*PartyResponse, error) {
	var customer *partner.Customer
	err := s.exec.run(ctx, "PartnerService", "CreateCustomer", tenantID, func(u *unitOfWork) error {
		var err error
		customer, err = partner.NewCustomer(tenantID, input.Code, input.Name)
		if err != nil {
			return err
		}
		exists, err := u.repos.Customers().ExistsByCode(u.ctx, tenantID, customer.Code)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError(shared.CodeAlreadyExists, "Customer with code "+customer.Code+" already exists")
		}
		customer.SetDetails(input.Phone, input.Email, input.Address, input.TaxCode, input.Note)
		customer.SetCreatedBy(userID)
		if err := u.repos.Customers().Save(u.ctx, customer); err != nil {
			return err
		}
		u.collect(customer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// UpdateCustomer edits a customer's name and contact details. The code is immutable.
func (s *PartnerService) UpdateCustomer(ctx context.Context, tenantID, id uuid.UUID, input PartyInput) (*PartyResponse, error) {
	var customer *partner.Customer
	err := s.exec.run(ctx, "PartnerService", "UpdateCustomer", tenantID, func(u *unitOfWork) error {
		var err error
		customer, err = u.repos.Customers().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := customer.Update(input.Name, input.Phone, input.Email, input.Address, input.TaxCode, input.Note); err != nil {
			return err
		}
		return u.repos.Customers().Save(u.ctx, customer)
	})
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// GetCustomer returns one customer
func (s *PartnerService) GetCustomer(ctx context.Context, tenantID, id uuid.UUID) (*PartyResponse, error) {
	customer, err := s.reads.Customers().FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// ListCustomers lists customers
func (s *PartnerService) ListCustomers(ctx context.Context, tenantID uuid.UUID, query ListQuery) (shared.Paginated[PartyResponse], error) {
	filter := query.ToFilter()
	filter.Search = catalog.NormalizeSearchText(filter.Search)
	customers, err := s.reads.Customers().FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[PartyResponse]{}, err
	}
	total, err := s.reads.Customers().CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[PartyResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(customers, ToCustomerResponse), total, filter.Page, filter.Limit()), nil
}

// ReconcileCustomer compares a customer's debt with the outstanding amount of
// their non-cancelled invoices
func (s *PartnerService) ReconcileCustomer(ctx context.Context, tenantID, id uuid.UUID) (*DebtReconciliation, error) {
	customer, err := s.reads.Customers().FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.reads.Invoices().SumOutstandingByCustomer(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return &DebtReconciliation{
		PartyID:     id,
		Debt:        customer.Debt,
		Outstanding: outstanding,
		Consistent:  customer.Debt.Equal(outstanding),
	}, nil
}

// CreateSupplier creates a supplier with zero debt
func (s *PartnerService) CreateSupplier(ctx context.Context, tenantID, userID uuid.UUID, input PartyInput) (*PartyResponse, error) {
	var supplier *partner.Supplier
	err := s.exec.run(ctx, "PartnerService", "CreateSupplier", tenantID, func(u *unitOfWork) error {
		var err error
		supplier, err = partner.NewSupplier(tenantID, input.Code, input.Name)
		if err != nil {
			return err
		}
		exists, err := u.repos.Suppliers().ExistsByCode(u.ctx, tenantID, supplier.Code)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError(shared.CodeAlreadyExists, "Supplier with code "+supplier.Code+" already exists")
		}
		supplier.SetDetails(input.Phone, input.Email, input.Address, input.TaxCode, input.Note)
		supplier.SetCreatedBy(userID)
		if err := u.repos.Suppliers().Save(u.ctx, supplier); err != nil {
			return err
		}
		u.collect(supplier)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// UpdateSupplier edits a supplier's name and contact details
func (s *PartnerService) UpdateSupplier(ctx context.Context, tenantID, id uuid.UUID, input PartyInput) (*PartyResponse, error) {
	var supplier *partner.Supplier
	err := s.exec.run(ctx, "PartnerService", "UpdateSupplier", tenantID, func(u *unitOfWork) error {
		var err error
		supplier, err = u.repos.Suppliers().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := supplier.Update(input.Name, input.Phone, input.Email, input.Address, input.TaxCode, input.Note); err != nil {
			return err
		}
		return u.repos.Suppliers().Save(u.ctx, supplier)
	})
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// GetSupplier returns one supplier
func (s *PartnerService) GetSupplier(ctx context.Context, tenantID, id uuid.UUID) (*PartyResponse, error) {
	supplier, err := s.reads.Suppliers().FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// ListSuppliers lists suppliers
func (s *PartnerService) ListSuppliers(ctx context.Context, tenantID uuid.UUID, query ListQuery) (shared.Paginated[PartyResponse], error) {
	filter := query.ToFilter()
	filter.Search = catalog.NormalizeSearchText(filter.Search)
	suppliers, err := s.reads.Suppliers().FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[PartyResponse]{}, err
	}
	total, err := s.reads.Suppliers().CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[PartyResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(suppliers, ToSupplierResponse), total, filter.Page, filter.Limit()), nil
}
