// Package orderrepo provides data transfer objects and GORM repositories for the
// order aggregate: headers and their line items.
package orderrepo

import (
	"time"

	"shoppingcart/internal/adapters/out/postgres/productrepo"
	"shoppingcart/internal/adapters/out/postgres/userrepo"
	"shoppingcart/internal/core/domain/model/kernel"
	"shoppingcart/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderHeaderDTO represents the database structure for order headers, with the
// shipping contact embedded in the same row.
type OrderHeaderDTO struct {
	ID                int64             `gorm:"primaryKey;autoIncrement"`
	ApplicationUserID string            `gorm:"type:varchar(36);not null;index"`
	User              *userrepo.UserDTO `gorm:"foreignKey:ApplicationUserID"`
	OrderDate         time.Time         `gorm:"not null;index"`
	ShippingDate      *time.Time
	OrderTotal        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OrderStatus       int             `gorm:"not null;index"`
	PaymentStatus     int             `gorm:"not null;index"`
	PaymentIntentID   string          `gorm:"size:255"`
	SessionID         string          `gorm:"size:255"`
	PaymentDate       *time.Time
	PaymentDueDate    *time.Time
	RefundID          string     `gorm:"size:255"`
	Carrier           string     `gorm:"size:100"`
	TrackingNumber    string     `gorm:"size:100"`
	Contact           ContactDTO `gorm:"embedded;embeddedPrefix:contact_"`
}

func (OrderHeaderDTO) TableName() string {
	return "order_headers"
}

// ContactDTO is the embedded shipping contact of an order header.
type ContactDTO struct {
	Name          string `gorm:"size:200"`
	PhoneNumber   string `gorm:"size:50"`
	StreetAddress string `gorm:"size:300"`
	City          string `gorm:"size:100"`
	State         string `gorm:"size:100"`
	PostalCode    string `gorm:"size:20"`
}

// OrderDetailDTO represents the database structure for order line items.
type OrderDetailDTO struct {
	ID            int64                   `gorm:"primaryKey;autoIncrement"`
	OrderHeaderID int64                   `gorm:"not null;index"`
	OrderHeader   *OrderHeaderDTO         `gorm:"foreignKey:OrderHeaderID"`
	ProductID     int64                   `gorm:"not null;index"`
	Product       *productrepo.ProductDTO `gorm:"foreignKey:ProductID"`
	Quantity      int                     `gorm:"not null"`
	Price         decimal.Decimal         `gorm:"type:numeric(12,2);not null"`
}

func (OrderDetailDTO) TableName() string {
	return "order_details"
}

func headerFromDomain(h *order.Header) OrderHeaderDTO {
	s := h.State()
	return OrderHeaderDTO{
		ID:                s.ID,
		ApplicationUserID: s.UserID,
		OrderDate:         s.OrderDate,
		ShippingDate:      s.ShippingDate,
		OrderTotal:        s.Total.Amount(),
		OrderStatus:       int(s.Status),
		PaymentStatus:     int(s.PaymentStatus),
		PaymentIntentID:   s.PaymentIntentID,
		SessionID:         s.SessionID,
		PaymentDate:       s.PaymentDate,
		PaymentDueDate:    s.PaymentDueDate,
		RefundID:          s.RefundID,
		Carrier:           s.Carrier,
		TrackingNumber:    s.TrackingNumber,
		Contact: ContactDTO{
			Name:          s.Contact.Name(),
			PhoneNumber:   s.Contact.PhoneNumber(),
			StreetAddress: s.Contact.StreetAddress(),
			City:          s.Contact.City(),
			State:         s.Contact.State(),
			PostalCode:    s.Contact.PostalCode(),
		},
	}
}

// headerToDomain reconstructs the header using RestoreHeader, which rejects
// statuses outside the known enumerations.
func headerToDomain(dto OrderHeaderDTO) (*order.Header, error) {
	total, err := kernel.NewMoney(dto.OrderTotal)
	if err != nil {
		return nil, err
	}

	contact, err := order.NewContact(
		dto.Contact.Name,
		dto.Contact.PhoneNumber,
		dto.Contact.StreetAddress,
		dto.Contact.City,
		dto.Contact.State,
		dto.Contact.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	h, err := order.RestoreHeader(order.HeaderState{
		ID:              dto.ID,
		UserID:          dto.ApplicationUserID,
		OrderDate:       dto.OrderDate.UTC(),
		ShippingDate:    utc(dto.ShippingDate),
		Total:           total,
		Status:          order.Status(dto.OrderStatus),
		PaymentStatus:   order.PaymentStatus(dto.PaymentStatus),
		PaymentIntentID: dto.PaymentIntentID,
		SessionID:       dto.SessionID,
		PaymentDate:     utc(dto.PaymentDate),
		PaymentDueDate:  utc(dto.PaymentDueDate),
		RefundID:        dto.RefundID,
		Carrier:         dto.Carrier,
		TrackingNumber:  dto.TrackingNumber,
		Contact:         contact,
	})
	if err != nil {
		return nil, err
	}

	if dto.User != nil {
		u, err := userrepo.ToDomain(*dto.User)
		if err != nil {
			return nil, err
		}
		if err := h.AttachUser(u); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func detailFromDomain(d *order.Detail) OrderDetailDTO {
	return OrderDetailDTO{
		ID:            d.ID(),
		OrderHeaderID: d.OrderHeaderID(),
		ProductID:     d.ProductID(),
		Quantity:      d.Quantity(),
		Price:         d.Price().Amount(),
	}
}

func detailToDomain(dto OrderDetailDTO) (*order.Detail, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	d, err := order.RestoreDetail(dto.ID, dto.OrderHeaderID, dto.ProductID, dto.Quantity, price)
	if err != nil {
		return nil, err
	}

	if dto.Product != nil {
		p, err := productrepo.ToDomain(*dto.Product)
		if err != nil {
			return nil, err
		}
		if err := d.AttachProduct(p); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
