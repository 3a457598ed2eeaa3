// Package http provides the echo-based HTTP transport. Handlers translate
// requests into commands and queries and map application errors to status
// codes; every business rule lives below this layer.
package http

import (
	"io"
	"net/http"
	"strconv"

	"petadoption/internal/core/application/usecases/commands"
	"petadoption/internal/core/application/usecases/queries"
	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/order"
	"petadoption/internal/core/domain/model/pet"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the application's command and query
// handlers.
type Server struct {
	// Command handlers
	registerUserHandler      commands.RegisterUserCommandHandler
	loginHandler             commands.LoginCommandHandler
	addPetHandler            commands.AddPetCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getAvailablePetsHandler queries.GetAvailablePetsQueryHandler
	getAllPetsHandler       queries.GetAllPetsQueryHandler
	getPetImageHandler      queries.GetPetImageQueryHandler
	getOrdersHandler        queries.GetOrdersQueryHandler
	getUserProfileHandler   queries.GetUserProfileQueryHandler
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	loginHandler commands.LoginCommandHandler,
	addPetHandler commands.AddPetCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getAvailablePetsHandler queries.GetAvailablePetsQueryHandler,
	getAllPetsHandler queries.GetAllPetsQueryHandler,
	getPetImageHandler queries.GetPetImageQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getUserProfileHandler queries.GetUserProfileQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		loginHandler:             loginHandler,
		addPetHandler:            addPetHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getAvailablePetsHandler:  getAvailablePetsHandler,
		getAllPetsHandler:        getAllPetsHandler,
		getPetImageHandler:       getPetImageHandler,
		getOrdersHandler:         getOrdersHandler,
		getUserProfileHandler:    getUserProfileHandler,
	}
}

// RegisterRoutes attaches all routes to the echo instance. Routes behind
// auth get the bearer middleware; the admin requirement itself is enforced
// by the command and query handlers.
func (s *Server) RegisterRoutes(e *echo.Echo, auth AuthMiddleware) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/pets", s.GetAvailablePets)
	api.GET("/pets/:id/image", s.GetPetImage)

	authed := api.Group("", auth.Authenticate)
	authed.POST("/pets", s.AddPet)
	authed.GET("/admin/pets", s.GetAllPets)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.GetOrders)
	authed.PUT("/orders/:id/status", s.UpdateOrderStatus)
	authed.GET("/user/profile", s.GetUserProfile)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /api/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorWithStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), req.Email, req.Password, req.Name, req.Address, req.Phone,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	registered, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userResponseFromAggregate(registered))
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorWithStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		AccessToken: result.Token,
		TokenType:   "bearer",
		User:        userResponseFromAggregate(result.User),
	})
}

// GetAvailablePets handles GET /api/pets.
func (s *Server) GetAvailablePets(ctx echo.Context) error {
	pets, err := s.getAvailablePetsHandler.Handle(ctx.Request().Context(), queries.NewGetAvailablePetsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PetResponse, len(pets))
	for i, p := range pets {
		response[i] = petResponseFromQuery(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPetImage handles GET /api/pets/:id/image. The photo bytes are served
// verbatim under their stored media type.
func (s *Server) GetPetImage(ctx echo.Context) error {
	petID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondErrorWithStatus(ctx, http.StatusBadRequest, "invalid pet id")
	}

	query, err := queries.NewGetPetImageQuery(petID)
	if err != nil {
		return respondError(ctx, err)
	}

	image, err := s.getPetImageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Blob(http.StatusOK, image.ImageType, image.Image)
}

// AddPet handles POST /api/pets. The body is a multipart form carrying the
// pet fields and the photo file.
func (s *Server) AddPet(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondErrorWithStatus(ctx, http.StatusUnauthorized, "not authenticated")
	}

	weight, err := parseFormFloat(ctx, "weight")
	if err != nil {
		return respondErrorWithStatus(ctx, http.StatusBadRequest, "invalid weight")
	}
	height, err := parseFormFloat(ctx, "height")
	if err != nil {
		return respondErrorWithStatus(ctx, http.StatusBadRequest, "invalid height")
	}

	gender, err := pet.GenderFromString(ctx.FormValue("gender"))
	if err != nil {
		return respondError(ctx, err)
	}

	image, imageType, err := readImageFile(ctx)
	if err != nil {
		return respondErrorWithStatus(ctx, http.StatusBadRequest, "invalid image file")
	}

	cmd, err := commands.NewAddPetCommand(
		kernel.NewUUID(),
		ctx.FormValue("name"),
		ctx.FormValue("category"),
		ctx.FormValue("breed"),
		gender,
		weight,
		height,
		ctx.FormValue("description"),
		image,
		imageType,
		actor.Role(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	listed, err := s.addPetHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, petResponseFromAggregate(listed))
}

// GetAllPets handles GET /api/admin/pets.
func (s *Server) GetAllPets(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondErrorWithStatus(ctx, http.StatusUnauthorized, "not authenticated")
	}

	query, err := queries.NewGetAllPetsQuery(actor.Role())
	if err != nil {
		return respondError(ctx, err)
	}

	pets, err := s.getAllPetsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PetResponse, len(pets))
	for i, p := range pets {
		response[i] = petResponseFromQuery(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondErrorWithStatus(ctx, http.StatusUnauthorized, "not authenticated")
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorWithStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	petID, err := kernel.UUIDFromString(req.PetID)
	if err != nil {
		return respondErrorWithStatus(ctx, http.StatusBadRequest, "invalid pet id")
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor.ID(), petID, order.ShippingInfo{
		Name:    req.ShippingName,
		Address: req.ShippingAddress,
		Phone:   req.ShippingPhone,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(placed))
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondErrorWithStatus(ctx, http.StatusUnauthorized, "not authenticated")
	}

	query, err := queries.NewGetOrdersQuery(actor.ID(), actor.Role())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponseFromQuery(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondErrorWithStatus(ctx, http.StatusUnauthorized, "not authenticated")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondErrorWithStatus(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondErrorWithStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, actor.Role())
	if err != nil {
		return respondErrorWithStatus(ctx, http.StatusBadRequest, err.Error())
	}

	decided, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(decided))
}

// GetUserProfile handles GET /api/user/profile.
func (s *Server) GetUserProfile(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return respondErrorWithStatus(ctx, http.StatusUnauthorized, "not authenticated")
	}

	query, err := queries.NewGetUserProfileQuery(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.getUserProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userResponseFromProfile(profile))
}

func parseFormFloat(ctx echo.Context, field string) (float64, error) {
	return strconv.ParseFloat(ctx.FormValue(field), 64)
}

func readImageFile(ctx echo.Context) ([]byte, string, error) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return nil, "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	imageType := fileHeader.Header.Get("Content-Type")
	if imageType == "" {
		imageType = http.DetectContentType(data)
	}

	return data, imageType, nil
}
