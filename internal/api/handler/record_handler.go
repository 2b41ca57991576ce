package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/financeflow/finance-api/internal/api/metrics"
	"github.com/financeflow/finance-api/internal/core/domain"
	"github.com/financeflow/finance-api/internal/core/ports"
)

// RecordHandler serves the CRUD routes for one record collection. Invoices
// and transactions are two instances of this handler; the routes sit behind
// the RequireApproved guard.
type RecordHandler struct {
	svc        ports.RecordService
	collection string // metrics label, e.g. "invoices"
	noun       string // message noun, e.g. "Invoice"
}

func NewRecordHandler(svc ports.RecordService, collection, noun string) *RecordHandler {
	return &RecordHandler{svc: svc, collection: collection, noun: noun}
}

// List returns every record as a top-level JSON array.
//
// @Summary      List records
// @Tags         records
// @Produce      json
// @Success      200  {array}   map[string]any
// @Failure      403  {object}  map[string]string
// @Router       /api/invoices [get]
func (h *RecordHandler) List(c echo.Context) error {
	records, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	if records == nil {
		records = []domain.Record{}
	}

	metrics.RecordOpsTotal.WithLabelValues(h.collection, "list").Inc()
	return c.JSON(http.StatusOK, records)
}

// Create persists the caller's fields as-is. Only scalar field values are
// accepted; nested objects or arrays fail the bind with 400.
//
// @Summary      Create a record
// @Tags         records
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/invoices [post]
func (h *RecordHandler) Create(c echo.Context) error {
	var fields domain.Fields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domain.ErrNonScalarField.Error())
	}

	id, err := h.svc.Create(c.Request().Context(), fields)
	if err != nil {
		return err
	}

	metrics.RecordOpsTotal.WithLabelValues(h.collection, "create").Inc()
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      id,
		"message": h.noun + " created successfully",
	})
}

// Update merges fields into an existing record. An id that never existed
// still yields a success response; only a malformed id is rejected.
//
// @Summary      Update a record
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Record id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/invoices/{id} [put]
func (h *RecordHandler) Update(c echo.Context) error {
	var fields domain.Fields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domain.ErrNonScalarField.Error())
	}

	if err := h.svc.Update(c.Request().Context(), c.Param("id"), fields); err != nil {
		return err
	}

	metrics.RecordOpsTotal.WithLabelValues(h.collection, "update").Inc()
	return c.JSON(http.StatusOK, echo.Map{"message": h.noun + " updated successfully"})
}

// Delete removes a record; deleting an id that never existed also succeeds.
//
// @Summary      Delete a record
// @Tags         records
// @Produce      json
// @Param        id  path  string  true  "Record id"
// @Success      200  {object}  map[string]string
// @Router       /api/invoices/{id} [delete]
func (h *RecordHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.RecordOpsTotal.WithLabelValues(h.collection, "delete").Inc()
	return c.JSON(http.StatusOK, echo.Map{"message": h.noun + " deleted successfully"})
}
