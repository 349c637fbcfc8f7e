package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
)

// WindowStart returns the lower bound of the creation-time window in platform format.
func WindowStart(now time.Time, lookback time.Duration) string {
	return now.Add(-lookback).Format(entities.WindowLayout)
}

// Run executes one assignment pass over recently created orders.
// Fetch failures abort the run. Per-order failures are collected in the report
// and signalled with ErrRunIncomplete once every order has been handled.
func (u *Usecase) Run(ctx context.Context, dryRun bool) (entities.RunReport, error) {
	if !u.acquire() {
		return entities.RunReport{}, entities.ErrRunInProgress
	}
	defer u.release()

	startedAt := u.now()
	report := entities.RunReport{
		StartedAt:   startedAt,
		WindowStart: WindowStart(startedAt, u.opts.Lookback),
		DryRun:      dryRun,
		Applied:     []entities.AppliedAssignment{},
		Skipped:     []entities.OrderSkip{},
		Failed:      []entities.OrderFailure{},
	}
	log := u.log.With("window_start", report.WindowStart, "dry_run", dryRun)
	log.Infow("run started")

	orders, err := u.listOrders(ctx, report.WindowStart)
	if err != nil {
		log.Errorw("fetch orders failed", "error", err)
		return report, err
	}
	report.Fetched = len(orders)

	franchises, err := u.franchiseMap(ctx)
	if err != nil {
		log.Errorw("fetch franchise directory failed", "error", err)
		return report, err
	}

	var roster entities.Roster
	if hasUnassigned(orders) {
		roster = u.roster(ctx)
	}

	cls := Classify(orders, roster, franchises, u.opts.Rules)
	report.Qualifying = len(cls.Standard) + len(cls.Franchise) + len(cls.Skipped) + len(cls.Failed)

	for _, s := range cls.Skipped {
		log.Infow("order skipped",
			"order", s.Order.Number,
			"customer", s.Order.CustomerName,
			"reason", s.Reason,
		)
		report.Skipped = append(report.Skipped, entities.OrderSkip{
			OrderNumber:  s.Order.Number,
			CustomerName: s.Order.CustomerName,
			Reason:       s.Reason,
		})
	}
	for _, f := range cls.Failed {
		report.Failed = append(report.Failed, u.recordFailure(f.Order, f.Author, f.Err))
	}

	for _, a := range cls.Assignments() {
		if !dryRun {
			if err := u.apply(ctx, a); err != nil {
				report.Failed = append(report.Failed, u.recordFailure(a.Order, noteAuthor(a), err))
				continue
			}
		}
		msg := "manager assigned"
		if dryRun {
			msg = "manager planned"
		}
		log.Infow(msg,
			"order", a.Order.Number,
			"customer", a.Order.CustomerCode,
			"group", a.Group,
			"manager_id", a.Decision.ManagerID,
			"note_removed", a.Decision.RemovesNote(),
		)
		report.Applied = append(report.Applied, entities.AppliedAssignment{
			OrderNumber:    a.Order.Number,
			CustomerCode:   a.Order.CustomerCode,
			Group:          a.Group,
			ManagerID:      a.Decision.ManagerID,
			NoteIDToRemove: a.Decision.NoteIDToRemove,
		})
	}

	report.FinishedAt = u.now()
	u.store(report)

	log.Infow("run finished",
		"fetched", report.Fetched,
		"qualifying", report.Qualifying,
		"applied", len(report.Applied),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed),
	)
	if len(report.Failed) > 0 {
		return report, fmt.Errorf("%w: %d of %d orders failed", entities.ErrRunIncomplete, len(report.Failed), report.Qualifying)
	}
	return report, nil
}

// LastReport returns the report of the most recent completed run.
func (u *Usecase) LastReport() (entities.RunReport, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.last == nil {
		return entities.RunReport{}, entities.ErrNoRunYet
	}
	return *u.last, nil
}

func (u *Usecase) acquire() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.running {
		return false
	}
	u.running = true
	return true
}

func (u *Usecase) release() {
	u.mu.Lock()
	u.running = false
	u.mu.Unlock()
}

func (u *Usecase) store(report entities.RunReport) {
	u.mu.Lock()
	u.last = &report
	u.mu.Unlock()
}

func (u *Usecase) listOrders(ctx context.Context, windowStart string) ([]entities.Order, error) {
	ctx, cancel := withTimeout(ctx, u.opts.CallTimeout)
	defer cancel()
	return u.orders.ListOrders(ctx, windowStart)
}

func (u *Usecase) roster(ctx context.Context) entities.Roster {
	ctx, cancel := withTimeout(ctx, u.opts.CallTimeout)
	defer cancel()

	members, err := u.staff.ListStaff(ctx)
	if err != nil {
		u.log.Warnw("staff directory unavailable", "error", err)
		return entities.Roster{Err: err}
	}
	return entities.Roster{Members: members}
}

func (u *Usecase) apply(ctx context.Context, a entities.Assignment) error {
	ctx, cancel := withTimeout(ctx, u.opts.CallTimeout)
	defer cancel()
	return u.mutator.UpdateOrder(ctx, a.Order.Number, a.Decision.ManagerID, a.Decision.NoteIDToRemove)
}

func (u *Usecase) recordFailure(order entities.Order, author string, err error) entities.OrderFailure {
	u.log.Errorw("order not processed",
		"order", order.Number,
		"customer_code", order.CustomerCode,
		"customer", order.CustomerName,
		"author", author,
		"error", err,
	)
	return entities.OrderFailure{
		OrderNumber:  order.Number,
		CustomerCode: order.CustomerCode,
		CustomerName: order.CustomerName,
		Author:       author,
		Error:        err.Error(),
	}
}

func hasUnassigned(orders []entities.Order) bool {
	for _, o := range orders {
		if o.Unassigned() {
			return true
		}
	}
	return false
}

func noteAuthor(a entities.Assignment) string {
	if note, ok := a.Order.FirstNote(); ok {
		return note.Author
	}
	return ""
}
