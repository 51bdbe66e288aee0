// dto.go
package dto

import (
	"encoding/json"

	"miniattic-api/internal/model"
)

// Response es el sobre común de todas las respuestas.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DataResponse lleva datas siempre, aunque sea una lista vacía.
type DataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Datas   any    `json:"datas"`
}

// CreateOrderRequest usado por POST /orders
type CreateOrderRequest struct {
	Products []LineItemDTO       `json:"products"`
	Payment  *model.OrderPayment `json:"payment" binding:"required"`
	Remark   string              `json:"remark" binding:"max=200"`
}

type LineItemDTO struct {
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

type UpdateOrderRequest struct {
	Status *int    `json:"status"`
	Remark *string `json:"remark" binding:"omitempty,max=200"`
}

// OrderView lo implementan sólo las dos proyecciones de abajo.
type OrderView interface {
	orderView()
}

type OrderLineView struct {
	Item        string      `json:"item"`
	Amount      int         `json:"amount"`
	Name        string      `json:"name"`
	Src         string      `json:"src"`
	Price       json.Number `json:"price"`
	Unavailable bool        `json:"unavailable,omitempty"`
}

// CustomerOrderView: sin cuenta ni total.
type CustomerOrderView struct {
	OrderID  string             `json:"orderId"`
	Products []OrderLineView    `json:"products"`
	Payment  model.OrderPayment `json:"payment"`
	Remark   string             `json:"remark"`
	Status   int                `json:"status"`
}

type AdminOrderView struct {
	OrderID    string             `json:"orderId"`
	AccountID  string             `json:"accountId"`
	Products   []OrderLineView    `json:"products"`
	Payment    model.OrderPayment `json:"payment"`
	OrderTotal json.Number        `json:"orderTotal"`
	Remark     string             `json:"remark"`
	Status     int                `json:"status"`
}

func (CustomerOrderView) orderView() {}
func (AdminOrderView) orderView() {}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=20"`
	Phone    string `json:"phone" binding:"required,min=9,max=10"`
	Account  string `json:"account" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Respuesta de login para clientes
type CustomerLoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Account string `json:"account"`
	Name    string `json:"name"`
	Token   string `json:"token"`
}

// Respuesta de login para admin/editor
type StaffLoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    string `json:"user"`
	Access  string `json:"access"`
	Token   string `json:"token"`
}

type ProductRequest struct {
	Class       string `json:"class" binding:"required"`
	Name        string `json:"name"`
	Subheading  string `json:"subheading"`
	Intro       string `json:"intro"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Show        bool   `json:"show"`
}

type CategoryRequest struct {
	Item string `json:"item"`
	Name string `json:"name"`
	Show bool   `json:"show"`
}

type PaymentRequest struct {
	Item        string  `json:"item"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Show        bool    `json:"show"`
}

type PageRequest struct {
	Description1 string `json:"description1"`
	Description2 string `json:"description2"`
	Description3 string `json:"description3"`
	Link         string `json:"link"`
	Show         bool   `json:"show"`
}

// Vistas públicas de catálogo: img se expone como src absoluto.
type ProductView struct {
	Item        string `json:"item"`
	Src         string `json:"src"`
	Class       string `json:"class"`
	Name        string `json:"name"`
	Show        bool   `json:"show"`
	Subheading  string `json:"subheading"`
	Intro       string `json:"intro"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

type PageView struct {
	Item         string `json:"item"`
	Src          string `json:"src"`
	Description1 string `json:"description1"`
	Description2 string `json:"description2"`
	Description3 string `json:"description3"`
	Link         string `json:"link"`
	Show         bool   `json:"show"`
}

type WebDataResponse struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	Pages    []PageView    `json:"pages"`
	Products []ProductView `json:"products"`
}
