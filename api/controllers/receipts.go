package controllers

import (
	"net/http"

	"github.com/kwojtas/vanstock-backend/api/responses"
	"github.com/kwojtas/vanstock-backend/api/validators"
	"github.com/kwojtas/vanstock-backend/internal/receipts"
	pkgerrors "github.com/kwojtas/vanstock-backend/pkg/errors"
	"github.com/kwojtas/vanstock-backend/pkg/logger"
)

// ReceiptsCreate books a goods receipt document and loads its items
// onto the caller's vehicle.
func ReceiptsCreate(svc receipts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "receipt service unavailable"))
			return
		}

		userID, plate, err := actorIdentity(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body receipts.CreateReceiptRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		created, err := svc.Create(ctx, receipts.CreateReceiptInput{
			UserID:   userID,
			CarPlate: plate,
			Request:  body,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// ReceiptsList returns the vehicle's receipt documents, newest first.
func ReceiptsList(svc receipts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "receipt service unavailable"))
			return
		}

		_, plate, err := actorIdentity(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.List(ctx, plate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"receipts": items})
	}
}

// ReceiptsGet returns one receipt with its items.
func ReceiptsGet(svc receipts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "receipt service unavailable"))
			return
		}

		_, plate, err := actorIdentity(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		id, err := parseIDParam(r, "receiptID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		receipt, err := svc.Get(ctx, id, plate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, receipt)
	}
}

// ReceiptsDelete removes the document. Stock and ledger stay untouched.
func ReceiptsDelete(svc receipts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "receipt service unavailable"))
			return
		}

		_, plate, err := actorIdentity(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		id, err := parseIDParam(r, "receiptID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, id, plate); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
