package http

import (
	"time"

	"petadoption/internal/core/application/usecases/queries"
	"petadoption/internal/core/domain/model/order"
	"petadoption/internal/core/domain/model/pet"
	"petadoption/internal/core/domain/model/user"
)

// Error is the JSON error payload returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by POST /api/auth/login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// UserResponse represents an account in API responses. It never carries
// credential material.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// PetResponse represents a pet in API responses. The photo is served from
// its own endpoint.
type PetResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Breed       string    `json:"breed"`
	Gender      string    `json:"gender"`
	Weight      float64   `json:"weight"`
	Height      float64   `json:"height"`
	Description string    `json:"description,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	PetID           string `json:"pet_id"`
	ShippingName    string `json:"shipping_name"`
	ShippingAddress string `json:"shipping_address"`
	ShippingPhone   string `json:"shipping_phone"`
}

// UpdateOrderStatusRequest is the body of PUT /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse represents an adoption order in API responses.
type OrderResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	PetID           string     `json:"pet_id"`
	PetName         string     `json:"pet_name"`
	ShippingName    string     `json:"shipping_name"`
	ShippingAddress string     `json:"shipping_address"`
	ShippingPhone   string     `json:"shipping_phone"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func userResponseFromAggregate(u *user.User) UserResponse {
	return UserResponse{
		ID:      u.ID().String(),
		Email:   u.Email(),
		Name:    u.Name(),
		Role:    u.Role().String(),
		Address: u.Address(),
		Phone:   u.Phone(),
	}
}

func userResponseFromProfile(p queries.UserProfileResponse) UserResponse {
	return UserResponse{
		ID:      p.ID.String(),
		Email:   p.Email,
		Name:    p.Name,
		Role:    p.Role,
		Address: p.Address,
		Phone:   p.Phone,
	}
}

func petResponseFromAggregate(p *pet.Pet) PetResponse {
	return PetResponse{
		ID:          p.ID().String(),
		Name:        p.Name(),
		Category:    p.Category(),
		Breed:       p.Breed(),
		Gender:      p.Gender().String(),
		Weight:      p.Weight(),
		Height:      p.Height(),
		Description: p.Description(),
		Available:   p.IsAvailable(),
		CreatedAt:   p.CreatedAt(),
	}
}

func petResponseFromQuery(p queries.PetResponse) PetResponse {
	return PetResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Category:    p.Category,
		Breed:       p.Breed,
		Gender:      p.Gender,
		Weight:      p.Weight,
		Height:      p.Height,
		Description: p.Description,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
	}
}

func orderResponseFromAggregate(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID().String(),
		UserID:          o.UserID().String(),
		PetID:           o.PetID().String(),
		PetName:         o.PetName(),
		ShippingName:    o.Shipping().Name,
		ShippingAddress: o.Shipping().Address,
		ShippingPhone:   o.Shipping().Phone,
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func orderResponseFromQuery(o queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:              o.ID.String(),
		UserID:          o.UserID.String(),
		PetID:           o.PetID.String(),
		PetName:         o.PetName,
		ShippingName:    o.ShippingName,
		ShippingAddress: o.ShippingAddress,
		ShippingPhone:   o.ShippingPhone,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
