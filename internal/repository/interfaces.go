// Package repository contains interfaces of the remote systems the service works with.
package repository

import (
	"context"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
)

// LifecycleInterface describes client startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// OrderSourceInterface lists recently created orders.
type OrderSourceInterface interface {
	// ListOrders returns orders created at or after windowStart ("YYYY-MM-DD HH:MM:SS").
	ListOrders(ctx context.Context, windowStart string) ([]entities.Order, error)
}

// StaffDirectoryInterface lists platform managers.
type StaffDirectoryInterface interface {
	ListStaff(ctx context.Context) ([]entities.StaffMember, error)
}

// OrderMutatorInterface applies a manager change to an order.
type OrderMutatorInterface interface {
	// UpdateOrder sets the manager and, when noteID is not nil, deletes that note
	// in the same request.
	UpdateOrder(ctx context.Context, number, managerID string, noteID *string) error
}

// FranchiseDirectoryInterface reads the spreadsheet holding the franchise directory.
type FranchiseDirectoryInterface interface {
	ReadSheet(ctx context.Context, index int) ([][]string, error)
	SheetTitles(ctx context.Context) ([]string, error)
}

// OrderPlatform aggregates everything the order platform client provides.
type OrderPlatform interface {
	LifecycleInterface
	OrderSourceInterface
	StaffDirectoryInterface
	OrderMutatorInterface
}

// FranchiseDirectory aggregates spreadsheet backend interfaces.
type FranchiseDirectory interface {
	LifecycleInterface
	FranchiseDirectoryInterface
}
