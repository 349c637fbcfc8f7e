// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"sort"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
	"github.com/Loandr1324/InsertManagerInOrder/internal/transport/http/dto"
)

// ToRunResponse maps a run report to its transport model.
func ToRunResponse(report entities.RunReport) dto.RunResponse {
	applied := make([]dto.Assignment, 0, len(report.Applied))
	for _, a := range report.Applied {
		applied = append(applied, ToAssignment(a))
	}

	skipped := make([]dto.Skip, 0, len(report.Skipped))
	for _, s := range report.Skipped {
		skipped = append(skipped, dto.Skip{
			OrderNumber:  s.OrderNumber,
			CustomerName: s.CustomerName,
			Reason:       s.Reason,
		})
	}

	failed := make([]dto.Failure, 0, len(report.Failed))
	for _, f := range report.Failed {
		failed = append(failed, dto.Failure{
			OrderNumber:  f.OrderNumber,
			CustomerCode: f.CustomerCode,
			CustomerName: f.CustomerName,
			NoteAuthor:   f.Author,
			Error:        f.Error,
		})
	}

	return dto.RunResponse{
		WindowStart: report.WindowStart,
		DryRun:      report.DryRun,
		Complete:    len(report.Failed) == 0,
		StartedAt:   report.StartedAt,
		FinishedAt:  report.FinishedAt,
		Counts: dto.RunCounts{
			Fetched:    report.Fetched,
			Qualifying: report.Qualifying,
			Applied:    len(applied),
			Skipped:    len(skipped),
			Failed:     len(failed),
		},
		Applied: applied,
		Skipped: skipped,
		Failed:  failed,
	}
}

// ToAssignment maps a single applied assignment.
func ToAssignment(a entities.AppliedAssignment) dto.Assignment {
	return dto.Assignment{
		OrderNumber:  a.OrderNumber,
		CustomerCode: a.CustomerCode,
		Group:        string(a.Group),
		ManagerID:    a.ManagerID,
		NoteRemoved:  a.NoteIDToRemove != nil,
	}
}

// ToFranchisesResponse maps the franchise directory, sorted by customer code.
func ToFranchisesResponse(titles []string, m entities.FranchiseMap) dto.FranchisesResponse {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	entries := make([]dto.FranchiseEntry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, dto.FranchiseEntry{CustomerCode: code, ManagerID: m[code]})
	}
	if titles == nil {
		titles = []string{}
	}
	return dto.FranchisesResponse{Worksheets: titles, Franchises: entries}
}
