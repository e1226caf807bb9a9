// Package http exposes the delivery desk operations over a JSON API.
package http

import (
	"fmt"
	"io"
	"net/http"

	"deliverydesk/internal/core/application/usecases/commands"
	"deliverydesk/internal/core/application/usecases/queries"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/ports"
	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// maxImportBytes caps the body of a collection import.
const maxImportBytes = 32 << 20

// Handlers groups every use case the API serves.
type Handlers struct {
	TakeOrder        commands.TakeOrderCommandHandler
	StoreDelivery    commands.StoreDeliveryCommandHandler
	ContinueDelivery commands.ContinueDeliveryCommandHandler
	CompleteDelivery commands.CompleteDeliveryCommandHandler
	FailDelivery     commands.FailDeliveryCommandHandler
	LoseDelivery     commands.LoseDeliveryCommandHandler
	BulkAccept       commands.BulkAcceptCommandHandler
	BulkComplete     commands.BulkCompleteCommandHandler
	ImportCollection commands.ImportCollectionCommandHandler

	QueryOrders      queries.QueryOrdersQueryHandler
	DashboardSummary queries.GetDashboardSummaryQueryHandler
	ExportCollection queries.ExportCollectionQueryHandler
	SchemaVersion    queries.GetSchemaVersionQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	log      *logger.Logger
}

func NewServer(handlers Handlers, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{handlers: handlers, log: log}
}

// Register installs middleware, the error handler and every route on e.
// API requests are checked against the embedded OpenAPI document, which is
// also served at /swagger/doc.json. metrics may be nil.
func (s *Server) Register(e *echo.Echo, metrics http.Handler) error {
	doc, err := GetOpenAPI()
	if err != nil {
		return err
	}
	validateRequest, err := openAPIValidator(doc)
	if err != nil {
		return err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return err
	}

	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = s.handleError
	e.Use(s.recoverer(), s.requestID(), s.requestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validateRequest)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders/bulk-accept", s.BulkAccept)
	api.POST("/orders/bulk-complete", s.BulkComplete)
	api.POST("/orders/:number/take", s.TakeOrder)
	api.POST("/orders/:number/store", s.StoreDelivery)
	api.POST("/orders/:number/continue", s.ContinueDelivery)
	api.POST("/orders/:number/complete", s.CompleteDelivery)
	api.POST("/orders/:number/fail", s.FailDelivery)
	api.POST("/orders/:number/lose", s.LoseDelivery)

	api.GET("/dashboard", s.GetDashboard)
	api.GET("/schema-version", s.GetSchemaVersion)
	api.GET("/collections/:collection", s.ExportCollection)
	api.PUT("/collections/:collection", s.ImportCollection)

	return nil
}

// TakeOrder handles POST /api/v1/orders/:number/take.
func (s *Server) TakeOrder(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTakeOrderCommand(number)
	if err != nil {
		return err
	}

	return respond(c)(s.handlers.TakeOrder.Handle(c.Request().Context(), cmd))
}

// StoreDelivery handles POST /api/v1/orders/:number/store.
func (s *Server) StoreDelivery(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}

	var req storeDeliveryRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewStoreDeliveryCommand(number, kernel.ID(req.LocationID), req.Comment)
	if err != nil {
		return err
	}

	return respond(c)(s.handlers.StoreDelivery.Handle(c.Request().Context(), cmd))
}

// ContinueDelivery handles POST /api/v1/orders/:number/continue.
func (s *Server) ContinueDelivery(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewContinueDeliveryCommand(number, req.Comment)
	if err != nil {
		return err
	}

	return respond(c)(s.handlers.ContinueDelivery.Handle(c.Request().Context(), cmd))
}

// CompleteDelivery handles POST /api/v1/orders/:number/complete.
func (s *Server) CompleteDelivery(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(number)
	if err != nil {
		return err
	}

	return respond(c)(s.handlers.CompleteDelivery.Handle(c.Request().Context(), cmd))
}

// FailDelivery handles POST /api/v1/orders/:number/fail.
func (s *Server) FailDelivery(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewFailDeliveryCommand(number, req.Comment)
	if err != nil {
		return err
	}

	return respond(c)(s.handlers.FailDelivery.Handle(c.Request().Context(), cmd))
}

// LoseDelivery handles POST /api/v1/orders/:number/lose.
func (s *Server) LoseDelivery(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoseDeliveryCommand(number, req.Comment)
	if err != nil {
		return err
	}

	return respond(c)(s.handlers.LoseDelivery.Handle(c.Request().Context(), cmd))
}

// BulkAccept handles POST /api/v1/orders/bulk-accept.
func (s *Server) BulkAccept(c echo.Context) error {
	var req bulkRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewBulkAcceptCommand(toIDs(req.OrderNumbers))
	if err != nil {
		return err
	}

	return respond(c)(s.handlers.BulkAccept.Handle(c.Request().Context(), cmd))
}

// BulkComplete handles POST /api/v1/orders/bulk-complete.
func (s *Server) BulkComplete(c echo.Context) error {
	var req bulkRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewBulkCompleteCommand(toIDs(req.OrderNumbers))
	if err != nil {
		return err
	}

	return respond(c)(s.handlers.BulkComplete.Handle(c.Request().Context(), cmd))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context) error {
	query, err := parseOrdersQuery(c)
	if err != nil {
		return err
	}

	resp, err := s.handlers.QueryOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderPageFromResult(resp.Total, resp.Page, resp.PerPage, resp.Items))
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	summary, err := s.handlers.DashboardSummary.Handle(c.Request().Context(), queries.NewGetDashboardSummaryQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardFromSummary(summary))
}

// GetSchemaVersion handles GET /api/v1/schema-version.
func (s *Server) GetSchemaVersion(c echo.Context) error {
	version, err := s.handlers.SchemaVersion.Handle(c.Request().Context(), queries.NewGetSchemaVersionQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SchemaVersion{Version: version})
}

// ExportCollection handles GET /api/v1/collections/:collection. The stored
// array is written as is.
func (s *Server) ExportCollection(c echo.Context) error {
	collection, err := ports.ParseCollection(c.Param("collection"))
	if err != nil {
		return err
	}

	query, err := queries.NewExportCollectionQuery(collection)
	if err != nil {
		return err
	}

	raw, err := s.handlers.ExportCollection.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, []byte(raw))
}

// ImportCollection handles PUT /api/v1/collections/:collection. The body is
// the whole JSON array.
func (s *Server) ImportCollection(c echo.Context) error {
	collection, err := ports.ParseCollection(c.Param("collection"))
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportBytes+1))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if len(raw) > maxImportBytes {
		return errs.NewValueIsOutOfRangeError("request body size", len(raw), 1, maxImportBytes)
	}

	cmd, err := commands.NewImportCollectionCommand(collection, raw)
	if err != nil {
		return err
	}

	return respond(c)(s.handlers.ImportCollection.Handle(c.Request().Context(), cmd))
}

// respond writes a command result as a Message.
func respond(c echo.Context) func(string, error) error {
	return func(msg string, err error) error {
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, Message{Message: msg})
	}
}

func orderNumberParam(c echo.Context) (kernel.ID, error) {
	var number uint64
	err := runtime.BindStyledParameterWithOptions("simple", "number", c.Param("number"), &number,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q is not a number", c.Param("number")))
	}
	return kernel.ID(number), nil
}

// bindBody decodes an optional JSON body and validates it.
func bindBody(c echo.Context, dest any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return c.Validate(dest)
}

func toIDs(raw []uint64) []kernel.ID {
	ids := make([]kernel.ID, 0, len(raw))
	for _, n := range raw {
		ids = append(ids, kernel.ID(n))
	}
	return ids
}
