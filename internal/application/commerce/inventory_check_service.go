package commerce

import (
	"context"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/sequence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryCheckService handles stock counts
type InventoryCheckService struct {
	exec  *executor
	reads TransactionalRepositories
}

// Create drafts a KK- check. Book stock and cost are snapshotted from each product now.
func (s *InventoryCheckService) Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateCheckInput) (*CheckResponse, error) {
	var check *inventory.InventoryCheck
	err := s.exec.run(ctx, "InventoryCheckService", "Create", tenantID, func(u *unitOfWork) error {
		number, err := u.nextNumber(sequence.DocumentTypeInventoryCheck)
		if err != nil {
			return err
		}
		checkDate := time.Now()
		if input.CheckDate != nil {
			checkDate = *input.CheckDate
		}
		check, err = inventory.NewInventoryCheck(tenantID, number, checkDate, input.Note)
		if err != nil {
			return err
		}
		check.SetCreatedBy(userID)
		for _, line := range input.Lines {
			if err := u.addCheckLine(check, line); err != nil {
				return err
			}
		}
		if err := u.repos.InventoryChecks().Save(u.ctx, check); err != nil {
			return err
		}
		u.collect(check)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToCheckResponse(check)
	return &resp, nil
}

// Update edits a DRAFT check
func (s *InventoryCheckService) Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateCheckInput) (*CheckResponse, error) {
	var check *inventory.InventoryCheck
	err := s.exec.run(ctx, "InventoryCheckService", "Update", tenantID, func(u *unitOfWork) error {
		var err error
		check, err = u.repos.InventoryChecks().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if !check.IsDraft() {
			return shared.NewInvalidTransitionError("inventory check "+check.CheckNumber, string(check.Status), "edit")
		}
		if input.Note != nil {
			if err := check.UpdateNote(*input.Note); err != nil {
				return err
			}
		}
		for _, productID := range input.RemoveProductIDs {
			if err := check.RemoveItem(productID); err != nil {
				return err
			}
		}
		for _, line := range input.Lines {
			if hasCheckLine(check, line.ProductID) {
				if err := check.RecordCount(line.ProductID, line.CountedQuantity, line.Remark); err != nil {
					return err
				}
				continue
			}
			if err := u.addCheckLine(check, line); err != nil {
				return err
			}
		}
		return u.repos.InventoryChecks().Save(u.ctx, check)
	})
	if err != nil {
		return nil, err
	}
	resp := ToCheckResponse(check)
	return &resp, nil
}

// Complete posts one MANUAL_ADJUST per differing line, referenced by the
// check number, and closes the check. All lines commit together.
func (s *InventoryCheckService) Complete(ctx context.Context, tenantID, id uuid.UUID) (*CheckResponse, error) {
	var check *inventory.InventoryCheck
	err := s.exec.run(ctx, "InventoryCheckService", "Complete", tenantID, func(u *unitOfWork) error {
		var err error
		check, err = u.repos.InventoryChecks().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if !check.IsDraft() {
			return shared.NewInvalidTransitionError("inventory check "+check.CheckNumber, string(check.Status), "complete")
		}
		adjustments := check.Adjustments()
		ids := make([]uuid.UUID, len(adjustments))
		for i, item := range adjustments {
			ids[i] = item.ProductID
		}
		if _, err := u.lockProducts(ids); err != nil {
			return err
		}
		for _, item := range adjustments {
			note := item.Remark
			if note == "" {
				note = "inventory check adjustment"
			}
			if _, err := u.changeStock(item.ProductID, item.Difference(), inventory.OperationManualAdjust, check.CheckNumber, note); err != nil {
				return err
			}
		}
		if err := check.Complete(); err != nil {
			return err
		}
		if err := u.repos.InventoryChecks().Save(u.ctx, check); err != nil {
			return err
		}
		u.collect(check)
		s.exec.logger.Info("inventory check completed",
			zap.String("check_number", check.CheckNumber),
			zap.Int("adjusted_lines", len(adjustments)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToCheckResponse(check)
	return &resp, nil
}

// Delete removes a DRAFT check
func (s *InventoryCheckService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.exec.run(ctx, "InventoryCheckService", "Delete", tenantID, func(u *unitOfWork) error {
		check, err := u.repos.InventoryChecks().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := check.EnsureDeletable(); err != nil {
			return err
		}
		return u.repos.InventoryChecks().DeleteForTenant(u.ctx, tenantID, id)
	})
}

// GetByID returns one check with its lines
func (s *InventoryCheckService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*CheckResponse, error) {
	check, err := s.reads.InventoryChecks().FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToCheckResponse(check)
	return &resp, nil
}

// List lists checks
func (s *InventoryCheckService) List(ctx context.Context, tenantID uuid.UUID, query ListQuery) (shared.Paginated[CheckResponse], error) {
	filter := query.ToFilter()
	checks, err := s.reads.InventoryChecks().FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[CheckResponse]{}, err
	}
	total, err := s.reads.InventoryChecks().CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[CheckResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(checks, ToCheckResponse), total, filter.Page, filter.Limit()), nil
}

func (u *unitOfWork) addCheckLine(check *inventory.InventoryCheck, line CheckLineInput) error {
	product, err := u.repos.Products().FindByIDForTenant(u.ctx, u.tenantID, line.ProductID)
	if err != nil {
		return err
	}
	return check.AddItem(product.ID, product.SKU, product.Name, product.Unit, product.Stock, line.CountedQuantity, product.CostPrice, line.Remark)
}

func hasCheckLine(check *inventory.InventoryCheck, productID uuid.UUID) bool {
	for _, item := range check.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
