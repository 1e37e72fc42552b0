package commerce

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// VoucherService handles the user-facing side of the cash-flow log.
// Only MANUAL vouchers can be edited or deleted.
type VoucherService struct {
	exec  *executor
	reads TransactionalRepositories
}

// CreateManual records a user-entered voucher in its own transaction
func (s *VoucherService) CreateManual(ctx context.Context, tenantID uuid.UUID, input VoucherInput) (*VoucherResponse, error) {
	var voucher *finance.CashFlowVoucher
	err := s.exec.run(ctx, "VoucherService", "CreateManual", tenantID, func(u *unitOfWork) error {
		var err error
		voucher, err = u.vouchers.Append(u.ctx, u.repos, tenantID, finance.VoucherSourceManual, toVoucherDetails(input))
		if err != nil {
			return err
		}
		u.collect(voucher)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToVoucherResponse(voucher)
	return &resp, nil
}

// Update replaces the details of a MANUAL voucher
func (s *VoucherService) Update(ctx context.Context, tenantID, id uuid.UUID, input VoucherInput) (*VoucherResponse, error) {
	var voucher *finance.CashFlowVoucher
	err := s.exec.run(ctx, "VoucherService", "Update", tenantID, func(u *unitOfWork) error {
		var err error
		voucher, err = u.repos.Vouchers().FindByIDForTenant(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := voucher.Edit(toVoucherDetails(input)); err != nil {
			return err
		}
		return u.repos.Vouchers().Save(u.ctx, voucher)
	})
	if err != nil {
		return nil, err
	}
	resp := ToVoucherResponse(voucher)
	return &resp, nil
}

// Delete removes a MANUAL voucher
func (s *VoucherService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.exec.run(ctx, "VoucherService", "Delete", tenantID, func(u *unitOfWork) error {
		voucher, err := u.repos.Vouchers().FindByIDForTenant(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := voucher.EnsureDeletable(); err != nil {
			return err
		}
		return u.repos.Vouchers().DeleteForTenant(u.ctx, tenantID, id)
	})
}

// GetByID returns one voucher
func (s *VoucherService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*VoucherResponse, error) {
	voucher, err := s.reads.Vouchers().FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToVoucherResponse(voucher)
	return &resp, nil
}

// List lists vouchers, newest first
func (s *VoucherService) List(ctx context.Context, tenantID uuid.UUID, query VoucherListQuery) (shared.Paginated[VoucherResponse], error) {
	filter := finance.VoucherFilter{
		Filter:   query.ToFilter(),
		Type:     finance.VoucherType(query.Type),
		Category: finance.VoucherCategory(query.Category),
		From:     query.From,
		To:       query.To,
	}
	vouchers, err := s.reads.Vouchers().FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[VoucherResponse]{}, err
	}
	total, err := s.reads.Vouchers().CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[VoucherResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(vouchers, ToVoucherResponse), total, filter.Page, filter.Limit()), nil
}

func toVoucherDetails(input VoucherInput) finance.VoucherDetails {
	d := finance.VoucherDetails{
		Type:                finance.VoucherType(input.Type),
		Category:            finance.VoucherCategory(input.Category),
		Amount:              input.Amount,
		CounterpartyName:    input.CounterpartyName,
		CounterpartyAddress: input.CounterpartyAddress,
		Description:         input.Description,
		InputVAT:            input.InputVAT,
		Reference:           input.Reference,
	}
	if input.VoucherDate != nil {
		d.VoucherDate = *input.VoucherDate
	}
	return d
}
