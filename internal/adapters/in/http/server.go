package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the warehouse API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler      commands.RegisterUserCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderItemsHandler  commands.UpdateOrderItemsCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	authenticateUserHandler queries.AuthenticateUserQueryHandler
	getProductsHandler      queries.GetProductsQueryHandler
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderItemsHandler    queries.GetOrderItemsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderItemsHandler commands.UpdateOrderItemsCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderItemsHandler queries.GetOrderItemsQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		deleteProductHandler:     deleteProductHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderItemsHandler:  updateOrderItemsHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		authenticateUserHandler:  authenticateUserHandler,
		getProductsHandler:       getProductsHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderItemsHandler:     getOrderItemsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
// Everything except registration and login requires a session token.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.POST("/api/auth/register", s.RegisterUser)
	e.POST("/api/auth/login", s.Login)

	api := e.Group("/api", SessionAuth(jwtSecret))
	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/orders/:id/items", s.GetOrderItems)
	api.PUT("/orders/:id/items", s.ReplaceOrderItems)
}

// RegisterUser handles POST /api/auth/register - creates a new user account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request RegisterUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, request.Username, request.Password)
	if err != nil {
		return writeBadRequest(ctx, "Invalid user data: "+err.Error())
	}

	if handleErr := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, RegisterUserResponse{UserID: userID.Bytes()})
}

// Login handles POST /api/auth/login - verifies credentials and issues a session token.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewAuthenticateUserQuery(request.Username, request.Password)
	if err != nil {
		return writeBadRequest(ctx, "Invalid credentials data: "+err.Error())
	}

	result, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		UserID: result.UserID.Bytes(),
		Token:  result.Token,
	})
}

// GetProducts handles GET /api/products - lists the acting user's products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query, err := queries.NewGetProductsQuery(actingUserID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			ID:       p.ID.Bytes(),
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/products - registers a new product for the acting user.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, actingUserID(ctx), request.Name, request.Price, request.Quantity)
	if err != nil {
		return writeBadRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.createProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.Bytes()})
}

// UpdateProduct handles PUT /api/products/:id - updates name, price and quantity.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid product id")
	}

	var request UpdateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, actingUserID(ctx), request.Name, request.Price, request.Quantity)
	if err != nil {
		return writeBadRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.updateProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(productID, actingUserID(ctx))
	if err != nil {
		return writeBadRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/orders - lists the acting user's orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(actingUserID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:        o.ID.Bytes(),
			OrderDate: o.OrderDate,
			Status:    o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders - creates a pending order with the given items.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	items, err := itemSpecs(request.Items)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order items: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actingUserID(ctx), items)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.Bytes()})
}

// DeleteOrder handles DELETE /api/orders/:id - deletes an order, restoring
// stock for shipped orders.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, actingUserID(ctx))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status - moves an order
// through its lifecycle. Shipping decrements stock.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var request ChangeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	targetStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeBadRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actingUserID(ctx), targetStatus)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderItems handles GET /api/orders/:id/items.
func (s *Server) GetOrderItems(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderItemsQuery(orderID, actingUserID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := s.getOrderItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderItem, len(items))
	for i, item := range items {
		response[i] = OrderItem{
			ID:        item.ID.Bytes(),
			ProductID: item.ProductID.Bytes(),
			Quantity:  item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReplaceOrderItems handles PUT /api/orders/:id/items - replaces the whole
// item set of a pending order.
func (s *Server) ReplaceOrderItems(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var request ReplaceOrderItemsRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	items, err := itemSpecs(request.Items)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order items: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(orderID, actingUserID(ctx), items)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.updateOrderItemsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func itemSpecs(items []OrderItemRequest) ([]commands.OrderItemSpec, error) {
	specs := make([]commands.OrderItemSpec, len(items))
	for i, item := range items {
		productID, err := kernel.UUIDFromBytes(item.ProductID[:])
		if err != nil {
			return nil, err
		}
		specs[i] = commands.OrderItemSpec{
			ProductID: productID,
			Quantity:  item.Quantity,
		}
	}
	return specs, nil
}
