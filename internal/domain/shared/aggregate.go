package shared

import "github.com/google/uuid"

// AggregateRoot is anything that buffers events until its unit of work commits
type AggregateRoot interface {
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot counts mutations in Version and buffers pending events.
type BaseAggregateRoot struct {
	BaseEntity
	Version int
	pending []DomainEvent
}

// IncrementVersion records one mutation
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
	a.Touch()
}

func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.pending = append(a.pending, event)
}

func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent { return a.pending }

func (a *BaseAggregateRoot) ClearDomainEvents() { a.pending = nil }

// TenantAggregateRoot belongs to exactly one tenant (organization)
type TenantAggregateRoot struct {
	BaseAggregateRoot
	TenantID  uuid.UUID
	CreatedBy *uuid.UUID
}

// NewTenantAggregateRoot starts a fresh aggregate at version 1
func NewTenantAggregateRoot(tenantID uuid.UUID) TenantAggregateRoot {
	return TenantAggregateRoot{
		BaseAggregateRoot: BaseAggregateRoot{BaseEntity: NewBaseEntity(), Version: 1},
		TenantID:          tenantID,
	}
}

// SetCreatedBy records the acting user; uuid.Nil leaves CreatedBy unset
func (t *TenantAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	if userID != uuid.Nil {
		t.CreatedBy = &userID
	}
}

// DrainEvents empties the buffers of aggs in argument order and returns
// their events concatenated. Nil entries are skipped.
func DrainEvents(aggs ...AggregateRoot) []DomainEvent {
	var out []DomainEvent
	for _, agg := range aggs {
		if agg == nil {
			continue
		}
		out = append(out, agg.GetDomainEvents()...)
		agg.ClearDomainEvents()
	}
	return out
}
