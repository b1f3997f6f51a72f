package http

import (
	"errors"
	"net/http"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/entitlement"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
// The actor's verified identity arrives in the X-Actor-Id and X-Actor-Role
// headers; authentication itself lives in the gateway in front of this
// service.
type Server struct {
	placeOrderHandler           commands.PlaceOrderCommandHandler
	claimLegHandler             commands.ClaimLegCommandHandler
	verifyHandoffHandler        commands.VerifyHandoffCommandHandler
	advanceStatusHandler        commands.AdvanceStatusCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	assignVendorHandler         commands.AssignVendorCommandHandler
	activateSubscriptionHandler commands.ActivateSubscriptionCommandHandler

	unclaimedOrdersHandler queries.GetUnclaimedOrdersQueryHandler
	customerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	trackOrderHandler      queries.TrackOrderQueryHandler
	agentOrdersHandler     queries.GetAgentOrdersQueryHandler
	vendorOrdersHandler    queries.GetVendorOrdersQueryHandler
	todayOrderCountHandler queries.GetTodayOrderCountQueryHandler

	timezone *time.Location
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	claimLegHandler commands.ClaimLegCommandHandler,
	verifyHandoffHandler commands.VerifyHandoffCommandHandler,
	advanceStatusHandler commands.AdvanceStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignVendorHandler commands.AssignVendorCommandHandler,
	activateSubscriptionHandler commands.ActivateSubscriptionCommandHandler,
	unclaimedOrdersHandler queries.GetUnclaimedOrdersQueryHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	agentOrdersHandler queries.GetAgentOrdersQueryHandler,
	vendorOrdersHandler queries.GetVendorOrdersQueryHandler,
	todayOrderCountHandler queries.GetTodayOrderCountQueryHandler,
	timezone *time.Location,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		claimLegHandler:             claimLegHandler,
		verifyHandoffHandler:        verifyHandoffHandler,
		advanceStatusHandler:        advanceStatusHandler,
		cancelOrderHandler:          cancelOrderHandler,
		assignVendorHandler:         assignVendorHandler,
		activateSubscriptionHandler: activateSubscriptionHandler,
		unclaimedOrdersHandler:      unclaimedOrdersHandler,
		customerOrdersHandler:       customerOrdersHandler,
		trackOrderHandler:           trackOrderHandler,
		agentOrdersHandler:          agentOrdersHandler,
		vendorOrdersHandler:         vendorOrdersHandler,
		todayOrderCountHandler:      todayOrderCountHandler,
		timezone:                    timezone,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetCustomerOrders)
	api.GET("/orders/unclaimed", s.GetUnclaimedOrders)
	api.GET("/orders/claimed", s.GetAgentOrders)
	api.GET("/orders/vendor-queue", s.GetVendorOrders)
	api.GET("/orders/count/today", s.GetTodayOrderCount)
	api.GET("/orders/:orderId", s.TrackOrder)
	api.POST("/orders/:orderId/claim", s.ClaimLeg)
	api.POST("/orders/:orderId/verify", s.VerifyHandoff)
	api.POST("/orders/:orderId/status", s.AdvanceStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/vendor", s.AssignVendor)
	api.POST("/subscriptions/confirm", s.ActivateSubscription)
}

// ErrorResponse is the JSON body returned on failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// actor extracts the verified actor identity from the request headers.
func actor(ctx echo.Context) (kernel.UUID, kernel.Role, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-Actor-Id"))
	if err != nil {
		return kernel.UUID{}, kernel.RoleUnknown, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get("X-Actor-Role"))
	if err != nil {
		return kernel.UUID{}, kernel.RoleUnknown, err
	}

	return id, role, nil
}

// writeError maps domain and application errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrRoleNotAllowed),
		errors.Is(err, order.ErrNotCustodian):
		code = http.StatusForbidden
	case errors.Is(err, order.ErrAlreadyClaimed),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrVendorAlreadyAssigned),
		errors.Is(err, errs.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, order.ErrCodeMismatch),
		errors.Is(err, entitlement.ErrQuantityExceeded),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, ErrorResponse{
		Code:    http.StatusForbidden,
		Message: message,
	})
}

// orderIDParam parses the :orderId path parameter.
func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderId"))
}

// NewOrderItem is one line of a placement request.
type NewOrderItem struct {
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// NewOrderRequest is the placement request body.
type NewOrderRequest struct {
	Items            []NewOrderItem `json:"items"`
	Address          string         `json:"address"`
	Phone            string         `json:"phone"`
	PaymentMethod    string         `json:"paymentMethod"`
	PaymentConfirmed bool           `json:"paymentConfirmed"`
}

// PlacedOrderResponse confirms a placement. The handoff code is revealed to
// the customer here and through their own listings only.
type PlacedOrderResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	TotalPrice    int    `json:"totalPrice"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
	Code          string `json:"code"`
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actorID, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}
	if role != kernel.RoleCustomer {
		return forbidden(ctx, "only customers place orders")
	}

	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	method, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]order.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		lineItem, err := order.NewLineItem(item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			return writeError(ctx, err)
		}
		items = append(items, lineItem)
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), actorID, items,
		req.Address, phone, method, req.PaymentConfirmed)
	if err != nil {
		return writeError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlacedOrderResponse{
		ID:            placed.ID().String(),
		Status:        placed.Status().String(),
		TotalPrice:    placed.TotalPrice(),
		PaymentMethod: placed.PaymentMethod().String(),
		PaymentStatus: placed.PaymentStatus().String(),
		Code:          placed.Code().String(),
	})
}

// GetCustomerOrders handles GET /api/v1/orders - the customer's own history.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	actorID, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}
	if role != kernel.RoleCustomer {
		return forbidden(ctx, "only customers list their orders")
	}

	query, err := queries.NewGetCustomerOrdersQuery(actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.customerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// legForListing resolves the leg query parameter, falling back to the leg
// implied by an agent role.
func legForListing(ctx echo.Context, role kernel.Role) (order.Leg, error) {
	if param := ctx.QueryParam("leg"); param != "" {
		return order.LegFromString(param)
	}

	switch role {
	case kernel.RolePickupAgent:
		return order.LegPickup, nil
	case kernel.RoleDeliveryAgent:
		return order.LegDelivery, nil
	default:
		return order.LegUnknown, errs.NewValueIsRequiredError("leg")
	}
}

// GetUnclaimedOrders handles GET /api/v1/orders/unclaimed - the open deals
// an agent may claim. The response never carries the handoff code.
func (s *Server) GetUnclaimedOrders(ctx echo.Context) error {
	_, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}
	if role != kernel.RolePickupAgent && role != kernel.RoleDeliveryAgent && role != kernel.RoleAdmin {
		return forbidden(ctx, "only agents browse open deals")
	}

	leg, err := legForListing(ctx, role)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUnclaimedOrdersQuery(leg)
	if err != nil {
		return writeError(ctx, err)
	}

	seq, err := s.unclaimedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	deals := make([]queries.GetUnclaimedOrdersQueryResponse, 0)
	for deal, err := range seq {
		if err != nil {
			return writeError(ctx, err)
		}
		deals = append(deals, deal)
	}

	return ctx.JSON(http.StatusOK, deals)
}

// GetAgentOrders handles GET /api/v1/orders/claimed - the agent's active claims.
func (s *Server) GetAgentOrders(ctx echo.Context) error {
	actorID, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}
	if role != kernel.RolePickupAgent && role != kernel.RoleDeliveryAgent {
		return forbidden(ctx, "only agents list their claims")
	}

	leg, err := legForListing(ctx, role)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAgentOrdersQuery(actorID, leg)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.agentOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetVendorOrders handles GET /api/v1/orders/vendor-queue - the vendor's
// processing queue, codes included.
func (s *Server) GetVendorOrders(ctx echo.Context) error {
	actorID, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}
	if role != kernel.RoleVendor {
		return forbidden(ctx, "only vendors list their queue")
	}

	query, err := queries.NewGetVendorOrdersQuery(actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.vendorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// TodayOrderCountResponse is the admin dashboard's daily counter.
type TodayOrderCountResponse struct {
	Count int `json:"count"`
}

// GetTodayOrderCount handles GET /api/v1/orders/count/today.
func (s *Server) GetTodayOrderCount(ctx echo.Context) error {
	_, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}
	if role != kernel.RoleAdmin {
		return forbidden(ctx, "only admins read the daily count")
	}

	query, err := queries.NewGetTodayOrderCountQuery(s.timezone)
	if err != nil {
		return writeError(ctx, err)
	}

	count, err := s.todayOrderCountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TodayOrderCountResponse{Count: count})
}

// TrackOrder handles GET /api/v1/orders/:orderId - one order with its line
// items, visible to the owning customer.
func (s *Server) TrackOrder(ctx echo.Context) error {
	actorID, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}
	if role != kernel.RoleCustomer {
		return forbidden(ctx, "only customers track their orders")
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewTrackOrderQuery(orderID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// ClaimRequest selects which leg of the order the agent claims.
type ClaimRequest struct {
	Leg string `json:"leg"`
}

// ClaimLeg handles POST /api/v1/orders/:orderId/claim. Exactly one claimant
// wins; later attempts get a conflict.
func (s *Server) ClaimLeg(ctx echo.Context) error {
	actorID, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ClaimRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	leg, err := order.LegFromString(req.Leg)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewClaimLegCommand(orderID, actorID, role, leg)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.claimLegHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// VerifyRequest carries the checkpoint and the code presented in person.
type VerifyRequest struct {
	Checkpoint string `json:"checkpoint"`
	Code       string `json:"code"`
}

// VerifyHandoff handles POST /api/v1/orders/:orderId/verify.
func (s *Server) VerifyHandoff(ctx echo.Context) error {
	actorID, _, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req VerifyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	checkpoint, err := order.CheckpointFromString(req.Checkpoint)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewVerifyHandoffCommand(orderID, actorID, checkpoint, req.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.verifyHandoffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AdvanceStatusRequest names the status the order should move to.
type AdvanceStatusRequest struct {
	Status string `json:"status"`
}

// AdvanceStatus handles POST /api/v1/orders/:orderId/status.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	actorID, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AdvanceStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceStatusCommand(orderID, actorID, role, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actorID, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignVendorRequest names the vendor that will wash the order.
type AssignVendorRequest struct {
	VendorID string `json:"vendorId"`
}

// AssignVendor handles POST /api/v1/orders/:orderId/vendor.
func (s *Server) AssignVendor(ctx echo.Context) error {
	_, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AssignVendorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignVendorCommand(orderID, vendorID, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignVendorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ActivateSubscriptionRequest confirms a paid subscription plan.
type ActivateSubscriptionRequest struct {
	Plan string `json:"plan"`
}

// ActivateSubscription handles POST /api/v1/subscriptions/confirm. The
// payment provider's webhook relay calls this after a successful charge.
func (s *Server) ActivateSubscription(ctx echo.Context) error {
	actorID, role, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor headers: "+err.Error())
	}
	if role != kernel.RoleCustomer {
		return forbidden(ctx, "only customers confirm subscriptions")
	}

	var req ActivateSubscriptionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	plan, err := entitlement.PlanFromString(req.Plan)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewActivateSubscriptionCommand(actorID, plan)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.activateSubscriptionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
