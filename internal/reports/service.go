package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kwojtas/vanstock-backend/pkg/enums"
	pkgerrors "github.com/kwojtas/vanstock-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// Service renders date-ranged consumption settlements for a vehicle.
type Service interface {
	Settlement(ctx context.Context, query SettlementQuery) (*Artifact, error)
}

type service struct {
	repo Repository
}

// NewService wires the report service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("report repository required")
	}
	return &service{repo: repo}, nil
}

// Settlement builds the consumption report for [From 00:00, To+1d 00:00).
// Only issued goods count; receipts and resets inside the window are ignored.
func (s *service) Settlement(ctx context.Context, query SettlementQuery) (*Artifact, error) {
	if strings.TrimSpace(query.CarPlate) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle plate is required")
	}
	if !query.Format.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported report format")
	}
	from := truncateToDay(query.From)
	to := truncateToDay(query.To)
	if to.Before(from) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date range end precedes start")
	}
	windowEnd := to.AddDate(0, 0, 1)

	rows, err := s.repo.SumOutbound(ctx, query.CarPlate, from, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("aggregating consumption: %w", err)
	}
	consumed := make([]ReportRow, 0, len(rows))
	for _, row := range rows {
		row.Quantity = -row.Quantity
		if row.Quantity <= 0 {
			continue
		}
		consumed = append(consumed, row)
	}
	if len(consumed) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNoReportData, "no consumption in the selected period")
	}

	query.From = from
	query.To = to

	switch query.Format {
	case enums.ReportFormatPDF:
		body, err := renderPDF(query, consumed)
		if err != nil {
			return nil, fmt.Errorf("rendering pdf report: %w", err)
		}
		return &Artifact{
			Filename:    settlementFilename(query.CarPlate, from, to, "pdf"),
			ContentType: "application/pdf",
			Body:        body,
		}, nil
	default:
		body, err := renderXLSX(query, consumed)
		if err != nil {
			return nil, fmt.Errorf("rendering xlsx report: %w", err)
		}
		return &Artifact{
			Filename:    settlementFilename(query.CarPlate, from, to, "xlsx"),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Body:        body,
		}, nil
	}
}

func settlementFilename(plate string, from, to time.Time, ext string) string {
	return fmt.Sprintf("settlement_%s_%s_%s.%s",
		plate, from.Format(dateLayout), to.Format(dateLayout), ext)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
