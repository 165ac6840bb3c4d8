package domain

import "time"

// Product represents a catalog product as mirrored from the host platform
type Product struct {
	ID               int64
	SKU              string
	TypeID           string
	Name             string
	Description      string
	ShortDescription string
	Barcode          *string
	RegularPrice     float64
	SalePrice        float64
	MsrpPrice        float64
	TaxClassID       int
	ManageStock      bool
	Weight           float64
	TagIDs           []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StockItem holds the inventory state of a single product
type StockItem struct {
	ProductID         int64
	Qty               float64
	IsInStock         bool
	BackordersAllowed bool
}

// Category is a catalog category a product belongs to
type Category struct {
	ID   int64
	Name string
}

// Attribute is a product attribute with its frontend input type and, for
// select attributes, the resolved option labels
type Attribute struct {
	Code          string
	Label         string
	FrontendInput string
	Options       []string
}

// GalleryImage is one entry of a product's media gallery
type GalleryImage struct {
	URL string
	Alt string
}

// Address is a billing or shipping address snapshot on an order
type Address struct {
	FirstName   string
	LastName    string
	Email       string
	Telephone   string
	Company     string
	Street1     string
	Street2     string
	City        string
	Region      string
	Postcode    string
	CountryID   string
	AddressType string
}

// Order represents a sales order as mirrored from the host platform
type Order struct {
	ID              int64
	IncrementID     string
	Status          string
	StatusLabel     string
	State           string
	CurrencyCode    string
	ShippingMethod  string
	Subtotal        float64
	ShippingAmount  float64
	TaxAmount       float64
	DiscountAmount  float64
	GrandTotal      float64
	TotalRefunded   float64
	TotalPaid       float64
	TotalDue        float64
	PaymentMethod   string
	PaymentTitle    string
	CancelReason    *string
	StoreViewID     int64
	BillingAddress  Address
	ShippingAddress Address
	Items           []OrderItem
	CreatedAt       time.Time
}

// OrderItem is an ordered line item
type OrderItem struct {
	ID              int64
	ProductID       int64
	SKU             string
	Name            string
	Barcode         *string
	QtyOrdered      float64
	QtyRefunded     float64
	Price           float64
	RowTotal        float64
	RowTotalInclTax float64
	TaxAmount       float64
}

// ShipmentTrack is one tracking entry attached to an order shipment
type ShipmentTrack struct {
	Title          string
	CarrierCode    string
	TrackingNumber string
	TracingLink    string
	LabelPDF       string
}

// StatusOption is an entry of the order status vocabulary
type StatusOption struct {
	Code  string
	Label string
}

// Website is the top level of the store hierarchy
type Website struct {
	ID   int64
	Code string
	Name string
}

// StoreGroup is a store belonging to a website
type StoreGroup struct {
	ID        int64
	WebsiteID int64
	Code      string
	Name      string
}

// StoreView is a store view belonging to a store group
type StoreView struct {
	ID      int64
	GroupID int64
	Code    string
	Name    string
}

// StockSource is a named inventory location
type StockSource struct {
	Code string
	Name string
}
