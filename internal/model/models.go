// models.go
package model

// Estados de la orden. Se guardan como entero y no hay máquina de estados.
const (
	OrderPlaced    = 0 // creada, sin pagar
	OrderPaid      = 1 // pagada, esperando envío
	OrderShipping  = 2
	OrderDelivered = 3
)

type Order struct {
	Item     string       `bson:"item" json:"item"`
	Account  string       `bson:"account" json:"account"`
	Products []LineItem   `bson:"products" json:"products"`
	Payment  OrderPayment `bson:"payment" json:"payment"`
	Remark   string       `bson:"remark,omitempty" json:"remark,omitempty"`
	Status   int          `bson:"status" json:"status"`
}

// Cambios administrativos; nil = no tocar.
type OrderPatch struct {
	Status *int
	Remark *string
}

type LineItem struct {
	Item   string `bson:"item" json:"item"`
	Amount int    `bson:"amount" json:"amount"`
}

// Copia del medio de pago elegido; price es el costo de envío.
type OrderPayment struct {
	Item        string  `bson:"item,omitempty" json:"item,omitempty"`
	Name        string  `bson:"name,omitempty" json:"name,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

type Product struct {
	Item        string `bson:"item" json:"item"`
	Class       string `bson:"class" json:"class"`
	Img         string `bson:"img" json:"img"`
	Name        string `bson:"name" json:"name"`
	Subheading  string `bson:"subheading" json:"subheading"`
	Intro       string `bson:"intro" json:"intro"`
	Price       string `bson:"price" json:"price"`
	Description string `bson:"description" json:"description"`
	Show        bool   `bson:"show" json:"show"`
}

type Category struct {
	Item string `bson:"item" json:"item"`
	Name string `bson:"name" json:"name"`
	Show bool   `bson:"show" json:"show"`
}

type Payment struct {
	Item        string  `bson:"item" json:"item"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description" json:"description"`
	Show        bool    `bson:"show" json:"show"`
}

type Page struct {
	Item         string `bson:"item" json:"item"`
	Img          string `bson:"img" json:"img"`
	Description1 string `bson:"description1" json:"description1"`
	Description2 string `bson:"description2" json:"description2"`
	Description3 string `bson:"description3" json:"description3"`
	Link         string `bson:"link" json:"link"`
	Show         bool   `bson:"show" json:"show"`
}

type User struct {
	Name        string `bson:"name" json:"name"`
	Phone       string `bson:"phone" json:"phone"`
	Account     string `bson:"account" json:"account"`
	Password    string `bson:"password" json:"-"`
	AccessRight int    `bson:"access_right" json:"accessRight"`
}
