package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kwojtas/vanstock-backend/internal/reports"
	pkgerrors "github.com/kwojtas/vanstock-backend/pkg/errors"
)

type stubReportService struct {
	query    *reports.SettlementQuery
	artifact *reports.Artifact
	err      error
}

func (s *stubReportService) Settlement(_ context.Context, query reports.SettlementQuery) (*reports.Artifact, error) {
	s.query = &query
	return s.artifact, s.err
}

func TestReportsSettlementStreamsFile(t *testing.T) {
	logg := testLogger()
	stub := &stubReportService{artifact: &reports.Artifact{
		Filename:    "settlement_WZ1234A_2026-03-01_2026-03-07.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Body:        []byte("PKdata"),
	}}

	body := `{"from":"2026-03-01","to":"2026-03-07","format":"xlsx"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/settlement", strings.NewReader(body))
	req = req.WithContext(authedContext(uuid.New(), "WZ1234A"))
	rec := httptest.NewRecorder()
	ReportsSettlement(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "settlement_WZ1234A_2026-03-01_2026-03-07.xlsx") {
		t.Fatalf("unexpected disposition header %q", got)
	}
	if stub.query == nil || stub.query.CarPlate != "WZ1234A" {
		t.Fatalf("expected plate from context, got %+v", stub.query)
	}
	if rec.Body.String() != "PKdata" {
		t.Fatalf("expected raw file body, got %q", rec.Body.String())
	}
}

func TestReportsSettlementRejectsBadDates(t *testing.T) {
	logg := testLogger()

	body := `{"from":"01-03-2026","to":"2026-03-07","format":"xlsx"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/settlement", strings.NewReader(body))
	req = req.WithContext(authedContext(uuid.New(), "WZ1234A"))
	rec := httptest.NewRecorder()
	ReportsSettlement(&stubReportService{}, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", rec.Code)
	}
}

func TestReportsSettlementNoData(t *testing.T) {
	logg := testLogger()
	stub := &stubReportService{err: pkgerrors.New(pkgerrors.CodeNoReportData, "no consumption in the selected period")}

	body := `{"from":"2026-03-01","to":"2026-03-07","format":"pdf"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/settlement", strings.NewReader(body))
	req = req.WithContext(authedContext(uuid.New(), "WZ1234A"))
	rec := httptest.NewRecorder()
	ReportsSettlement(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when the window is empty, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no consumption") {
		t.Fatalf("expected typed message, got %s", rec.Body.String())
	}
}
