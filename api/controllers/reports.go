package controllers

import (
	"net/http"
	"time"

	"github.com/kwojtas/vanstock-backend/api/middleware"
	"github.com/kwojtas/vanstock-backend/api/responses"
	"github.com/kwojtas/vanstock-backend/api/validators"
	"github.com/kwojtas/vanstock-backend/internal/reports"
	"github.com/kwojtas/vanstock-backend/pkg/enums"
	pkgerrors "github.com/kwojtas/vanstock-backend/pkg/errors"
	"github.com/kwojtas/vanstock-backend/pkg/logger"
)

// ReportsSettlement renders the consumption report for the caller's
// vehicle and streams it back as a file download.
func ReportsSettlement(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable"))
			return
		}

		_, plate, err := actorIdentity(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body reports.SettlementRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		from, err := time.Parse("2006-01-02", body.From)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid from date (expected YYYY-MM-DD)"))
			return
		}
		to, err := time.Parse("2006-01-02", body.To)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid to date (expected YYYY-MM-DD)"))
			return
		}
		format, err := enums.ParseReportFormat(body.Format)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid report format"))
			return
		}

		artifact, err := svc.Settlement(ctx, reports.SettlementQuery{
			CarPlate: plate,
			UserName: middleware.UserNameFromContext(ctx),
			Place:    validators.SanitizeString(body.Place, 200),
			From:     from,
			To:       to,
			Format:   format,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteFile(w, artifact.Filename, artifact.ContentType, artifact.Body)
	}
}
