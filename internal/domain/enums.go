package domain

// Product type codes
const (
	ProductTypeSimple       = "simple"
	ProductTypeConfigurable = "configurable"
)

// FrontendInputSelect marks attributes whose options are surfaced to the
// external consumer
const FrontendInputSelect = "select"

// StockStatusOutOfStock is the only inventory status value that marks a
// product out of stock; every other value means in stock
const StockStatusOutOfStock = "out_of_stock"

// PaymentMethodCashOnDelivery is the payment method code treated as COD
const PaymentMethodCashOnDelivery = "cashondelivery"

// Order status codes this service reacts to
const (
	OrderStatusPending  = "pending"
	OrderStatusCanceled = "canceled"
	OrderStatusClosed   = "closed"
)

// Order lifecycle event names dispatched to registered observers
const (
	EventOrderCancelAfter = "sales_order_cancel_after"
)

// DefaultOrderStatuses is the status filter applied when a list request does
// not name any statuses
var DefaultOrderStatuses = []string{
	"pending",
	"processing",
	"complete",
	"holded",
	"pending_payment",
}
