// Package models contains the GORM persistence models of the commerce core.
// Domain entities carry no ORM tags; each model here maps one table and
// converts to and from its domain type with ToDomain and FromDomain.
//
// Every document table has a unique (tenant_id, document_number) index so a
// duplicated number surfaces as gorm.ErrDuplicatedKey.
package models
