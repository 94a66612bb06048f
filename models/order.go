package models

import "time"

// OrderStatus represents all possible states of a food delivery order
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "on the way"
	StatusDelivered OrderStatus = "delivered"
)

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	UserID          uint        `json:"user_id" gorm:"not null"`
	User            User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID    uint        `json:"restaurant_id" gorm:"not null"`
	Restaurant      Restaurant  `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalPrice      float64     `json:"total_price"`
	DeliveryAddress Address     `json:"delivery_address" gorm:"embedded;embeddedPrefix:delivery_"`
	Status          OrderStatus `json:"status" gorm:"not null"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is a denormalized snapshot taken at order time; later menu
// edits do not touch it.
type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null"`
	Name     string  `json:"name" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"` // snapshot price at time of order
	Quantity int     `json:"quantity" gorm:"not null"`
}
