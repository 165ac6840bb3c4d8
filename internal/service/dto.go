package service

// ProductRecord is the external product representation
type ProductRecord struct {
	ID               int64             `json:"id"`
	SKU              string            `json:"sku"`
	Barcode          *string           `json:"barcode"`
	StockQuantity    float64           `json:"stock_quantity"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"short_description"`
	DateCreated      string            `json:"date_created"`
	DateModified     string            `json:"date_modified"`
	Categories       []CategoryRecord  `json:"categories"`
	Tags             []string          `json:"tags"`
	Attributes       []AttributeRecord `json:"attributes"`
	Variations       []VariationRecord `json:"variations"`
	Prices           PriceRecord       `json:"prices"`
	GalleryImages    GalleryRecord     `json:"gallery_images"`
	TaxClass         int               `json:"tax_class"`
	ManageStock      bool              `json:"manage_stock"`
	InStock          bool              `json:"in_stock"`
	BackordersAllowed bool             `json:"backorders_allowed"`
	Weight           float64           `json:"weight"`
}

type CategoryRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AttributeRecord struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

// VariationRecord is a configurable child product nested under its parent
type VariationRecord struct {
	ID                int64             `json:"id"`
	SKU               string            `json:"sku"`
	Barcode           *string           `json:"barcode"`
	RegularPrice      float64           `json:"regular_price"`
	SalePrice         float64           `json:"sale_price"`
	Price             float64           `json:"price"`
	StockQuantity     float64           `json:"stock_quantity"`
	InStock           bool              `json:"in_stock"`
	BackordersAllowed bool              `json:"backorders_allowed"`
	Attributes        []AttributeRecord `json:"attributes"`
	Thumbnail         string            `json:"thumbnail"`
}

// PriceRecord carries the product price block; price is the sale price when
// non-zero, otherwise the regular price
type PriceRecord struct {
	RegularPrice float64 `json:"regular_price"`
	SalePrice    float64 `json:"sale_price"`
	Price        float64 `json:"price"`
	MsrpPrice    float64 `json:"msrp_price"`
	Qty          float64 `json:"qty"`
}

type GalleryRecord struct {
	Full      string        `json:"full"`
	Thumbnail string        `json:"thumbnail"`
	Images    []ImageRecord `json:"images"`
}

type ImageRecord struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// InventoryUpdate is one entry of a bulk inventory update request
type InventoryUpdate struct {
	SKU    string  `json:"sku" binding:"required"`
	Qty    float64 `json:"qty"`
	Status string  `json:"status"`
}

// OrderRecord is the external order representation
type OrderRecord struct {
	ID             int64                 `json:"id"`
	IncrementID    string                `json:"increment_id"`
	Status         OrderStatusRecord     `json:"status"`
	Currency       string                `json:"currency"`
	ShippingMethod string                `json:"shipping_method"`
	Total          float64               `json:"total"`
	Subtotal       float64               `json:"subtotal"`
	TaxTotal       float64               `json:"tax_total"`
	DiscountTotal  float64               `json:"discount_total"`
	CreatedAt      string                `json:"created_at"`
	Invoice        InvoiceRecord         `json:"invoice"`
	Customer       CustomerRecord        `json:"customer"`
	OrderItems     []OrderItemRecord     `json:"order_items"`
	PaymentMethod  PaymentMethodRecord   `json:"payment_method"`
	ShippingAddress ShippingAddressRecord `json:"shipping_address"`
	CancelReason   *string               `json:"cancel_reason"`
	Totals         map[string]TotalRecord `json:"totals"`
	Shipments      []ShipmentRecord      `json:"shipments"`
}

type OrderStatusRecord struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	State string `json:"state"`
}

type InvoiceRecord struct {
	Currency      string  `json:"currency"`
	Subtotal      float64 `json:"subtotal"`
	ShippingPrice float64 `json:"shipping_price"`
	Tax           float64 `json:"tax"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
}

// CustomerRecord is the customer snapshot taken from the billing address
type CustomerRecord struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
}

type OrderItemRecord struct {
	ID        int64   `json:"id"`
	SKU       string  `json:"sku"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Barcode   *string `json:"barcode"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
	Total     float64 `json:"total"`
	Tax       float64 `json:"tax"`
}

type PaymentMethodRecord struct {
	Code             string `json:"code"`
	Title            string `json:"title"`
	IsCashOnDelivery bool   `json:"is_cash_on_delivery"`
}

type ShippingAddressRecord struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	CountryID   string `json:"country_id"`
	Country     string `json:"country"`
	Region      string `json:"region"`
	City        string `json:"city"`
	Street      string `json:"street"`
	Postcode    string `json:"postcode"`
	AddressType string `json:"addressType"`
	Company     string `json:"company"`
	Phone       string `json:"phone"`
}

// TotalRecord duplicates a monetary total as a raw value and a formatted
// display string
type TotalRecord struct {
	Title          string  `json:"title"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formatted_value"`
}

type ShipmentRecord struct {
	TrackNumber      string `json:"track_number"`
	Title            string `json:"title"`
	CarrierCode      string `json:"carrier_code"`
	TracingLink      string `json:"tracing_link"`
	TrackingNumber   string `json:"tracking_number"`
	ShippingLabelPDF string `json:"shipping_label_pdf"`
}

// RefundItem is one entry of a refund request
type RefundItem struct {
	ItemID int64   `json:"item_id" binding:"required"`
	Qty    float64 `json:"qty" binding:"required"`
}

// StoreInfoResult is the store-info response shape: either data or error is set
type StoreInfoResult struct {
	Data  *StoreInfoData    `json:"data"`
	Error *StoreInfoError   `json:"error,omitempty"`
}

type StoreInfoError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type StoreInfoData struct {
	StoreInfo     StoreDetails     `json:"store_info"`
	AllStores     AllStores        `json:"all_stores"`
	StockSources  []string         `json:"stock_sources"`
	OrderStatuses []StatusRecord   `json:"order_statuses"`
}

type StoreDetails struct {
	General GeneralSettings `json:"general"`
	Sales   SalesSettings   `json:"sales"`
	Catalog CatalogSettings `json:"catalog"`
	URLs    StoreURLs       `json:"urls"`
}

type GeneralSettings struct {
	StoreName         string `json:"store_name"`
	StoreEmail        string `json:"store_email"`
	StorePhone        string `json:"store_phone"`
	StoreCurrencyCode string `json:"store_currency_code"`
	StoreCountry      string `json:"store_country"`
	StoreTimezone     string `json:"store_timezone"`
	StoreLocale       string `json:"store_locale"`
}

type SalesSettings struct {
	DefaultPaymentMethod  string   `json:"default_payment_method"`
	DefaultShippingMethod string   `json:"default_shipping_method"`
	AllowedCountries      []string `json:"allowed_countries"`
}

type CatalogSettings struct {
	DefaultCategory string `json:"default_category"`
	RootCategory    string `json:"root_category"`
}

type StoreURLs struct {
	BaseURL   string `json:"base_url"`
	SecureURL string `json:"secure_url"`
}

type AllStores struct {
	Websites []WebsiteRecord `json:"websites"`
}

type WebsiteRecord struct {
	WebsiteID   int64         `json:"website_id"`
	WebsiteCode string        `json:"website_code"`
	WebsiteName string        `json:"website_name"`
	Stores      []StoreRecord `json:"stores"`
}

type StoreRecord struct {
	StoreID        int64             `json:"store_id"`
	StoreName      string            `json:"store_name"`
	StoreCode      string            `json:"store_code"`
	StoreGroupID   int64             `json:"store_group_id"`
	StoreGroupName string            `json:"store_group_name"`
	StoreViews     []StoreViewRecord `json:"store_views"`
}

type StoreViewRecord struct {
	StoreViewID   int64  `json:"store_view_id"`
	StoreViewName string `json:"store_view_name"`
	StoreViewCode string `json:"store_view_code"`
}

type StatusRecord struct {
	Title string `json:"title"`
	Code  string `json:"code"`
}
