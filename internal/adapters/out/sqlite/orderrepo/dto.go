// Package orderrepo maps order aggregates to the bean_buyer table and
// implements ports.OrderRepository with GORM.
package orderrepo

import (
	"storefront/internal/core/domain/model/order"
)

// OrderDTO is one row of the bean_buyer table.
type OrderDTO struct {
	ID        string `gorm:"column:id;primaryKey;size:6"`
	Name      string `gorm:"column:name;not null"`
	Beans     uint32 `gorm:"column:beans;not null"`
	Email     string `gorm:"column:email;not null"`
	Sender    string `gorm:"column:sender;not null"`
	SSN       string `gorm:"column:ssn;not null"`
	BeanStats int    `gorm:"column:bean_stats;not null;default:1"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "bean_buyer"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:        o.Code().String(),
		Name:      o.CustomerName(),
		Beans:     o.Quantity(),
		Email:     o.CustomerEmail(),
		Sender:    o.SenderEmail(),
		SSN:       o.Reference(),
		BeanStats: int(o.Status()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	code, err := order.NewTrackingCode(dto.ID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(code, dto.Name, dto.Beans, dto.Email, dto.Sender, dto.SSN, order.Status(dto.BeanStats))
}
