package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/kwojtas/vanstock-backend/api/middleware"
	"github.com/kwojtas/vanstock-backend/api/responses"
	"github.com/kwojtas/vanstock-backend/api/validators"
	"github.com/kwojtas/vanstock-backend/internal/ledger"
	"github.com/kwojtas/vanstock-backend/internal/stock"
	"github.com/kwojtas/vanstock-backend/pkg/enums"
	pkgerrors "github.com/kwojtas/vanstock-backend/pkg/errors"
	"github.com/kwojtas/vanstock-backend/pkg/logger"
)

type receivePayload struct {
	Items []stock.ItemQuantity `json:"items" validate:"required,min=1,dive"`
}

type issuePayload struct {
	Place string               `json:"place" validate:"required"`
	Items []stock.ItemQuantity `json:"items" validate:"required,min=1,dive"`
}

type resetPayload struct {
	Items []stock.ItemQuantity `json:"items" validate:"dive"`
}

// actorIdentity extracts the authenticated technician and their vehicle.
func actorIdentity(ctx context.Context) (uuid.UUID, string, error) {
	userID, err := uuid.Parse(middleware.UserIDFromContext(ctx))
	if err != nil {
		return uuid.Nil, "", pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user identity")
	}
	plate := strings.TrimSpace(middleware.CarPlateFromContext(ctx))
	if plate == "" {
		return uuid.Nil, "", pkgerrors.New(pkgerrors.CodeForbidden, "no vehicle assigned")
	}
	return userID, plate, nil
}

// WarehouseReceive loads goods onto the caller's vehicle.
func WarehouseReceive(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		userID, plate, err := actorIdentity(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body receivePayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snapshots, err := svc.Receive(ctx, stock.ReceiveInput{
			UserID:   userID,
			CarPlate: plate,
			Items:    body.Items,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"stock": snapshots})
	}
}

// WarehouseIssue hands goods from the vehicle over to a job site.
func WarehouseIssue(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		userID, plate, err := actorIdentity(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body issuePayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snapshots, err := svc.Issue(ctx, stock.IssueInput{
			UserID:   userID,
			CarPlate: plate,
			Place:    validators.SanitizeString(body.Place, 200),
			Items:    body.Items,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"stock": snapshots})
	}
}

// WarehouseReset replaces the vehicle state after a physical stocktake.
func WarehouseReset(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		userID, plate, err := actorIdentity(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body resetPayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snapshots, err := svc.Reset(ctx, stock.ResetInput{
			UserID:   userID,
			CarPlate: plate,
			Items:    body.Items,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"stock": snapshots})
	}
}

// VehicleStock returns the caller's current vehicle inventory.
func VehicleStock(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		_, plate, err := actorIdentity(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snapshots, err := svc.VehicleStock(ctx, plate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"stock": snapshots})
	}
}

// WarehouseHistory lists the vehicle's movement ledger, newest first.
func WarehouseHistory(svc ledger.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ledger service unavailable"))
			return
		}

		_, plate, err := actorIdentity(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		// The full history is returned unless the caller opts into a limit.
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 10_000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1_000_000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		query := ledger.HistoryQuery{
			CarPlate: plate,
			Limit:    limit,
			Offset:   offset,
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("product_id")); raw != "" {
			productID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product_id"))
				return
			}
			query.ProductID = &productID
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("type")); raw != "" {
			movementType, err := enums.ParseMovementType(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid movement type"))
				return
			}
			query.Type = &movementType
		}

		from, err := validators.ParseQueryDate(r, "from")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		query.From = from

		to, err := validators.ParseQueryDate(r, "to")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if to != nil {
			end := to.AddDate(0, 0, 1)
			query.To = &end
		}

		entries, err := svc.History(ctx, query)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"history": entries})
	}
}
