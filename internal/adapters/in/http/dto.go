package http

import "time"

// ErrorResponse is the envelope for all error replies.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductRequest is one line item of an order creation request.
type ProductRequest struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// CreateOrderRequest carries everything order intake needs: the parties,
// the goods, the money, and the pickup/delivery addresses down to ward and
// province granularity.
type CreateOrderRequest struct {
	SellerID           string           `json:"seller_id"`
	CustomerID         string           `json:"customer_id"`
	Products           []ProductRequest `json:"products"`
	COD                bool             `json:"cod"`
	CODAmount          string           `json:"cod_amount"`
	ShipFee            string           `json:"ship_fee"`
	TotalWeight        float64          `json:"total_weight"`
	PickupWardID       string           `json:"pickup_ward_id,omitempty"`
	PickupProvinceID   string           `json:"pickup_province_id"`
	DeliveryWardID     string           `json:"delivery_ward_id,omitempty"`
	DeliveryProvinceID string           `json:"delivery_province_id"`
}

// CreateOrderResponse returns the identifiers the caller needs to follow up.
type CreateOrderResponse struct {
	OrderID      string `json:"order_id"`
	TrackingCode string `json:"tracking_code"`
}

// SubmitScanRequest is an office terminal scan.
type SubmitScanRequest struct {
	TrackingCode string `json:"tracking_code"`
	OfficeID     string `json:"office_id"`
	EventType    string `json:"event_type"`
	Note         string `json:"note,omitempty"`
}

// SubmitShipperScanRequest is a shipper handheld scan.
type SubmitShipperScanRequest struct {
	TrackingCode string   `json:"tracking_code"`
	ShipperID    string   `json:"shipper_id"`
	EventType    string   `json:"event_type"`
	Note         string   `json:"note,omitempty"`
	ProofImages  []string `json:"proof_images,omitempty"`
}

// ScanResponse is the order state after a successfully applied scan.
type ScanResponse struct {
	OrderID      string `json:"order_id"`
	TrackingCode string `json:"tracking_code"`
	Status       string `json:"status"`
	CurrentType  string `json:"current_type"`
}

// OrderIDsRequest is the shared shape of batch order endpoints.
type OrderIDsRequest struct {
	OrderIDs []string `json:"order_ids"`
	Note     string   `json:"note,omitempty"`
}

// ArrangedOrderResponse is one successfully dispatched assignment.
type ArrangedOrderResponse struct {
	OrderID   string `json:"order_id"`
	ShipperID string `json:"shipper_id"`
	TaskID    string `json:"task_id"`
	ZoneID    string `json:"zone_id"`
}

// FailedOrderResponse is one order dispatch could not arrange.
type FailedOrderResponse struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

// ArrangePickupResponse reports per-order dispatch outcomes, shared by
// the arrange-pickup and arrange-delivery endpoints.
type ArrangePickupResponse struct {
	Arranged []ArrangedOrderResponse `json:"arranged"`
	Failed   []FailedOrderResponse   `json:"failed"`
}

// SkippedOrderResponse is one order bulk cancellation left untouched.
type SkippedOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// BulkCancelResponse reports per-order cancellation outcomes.
type BulkCancelResponse struct {
	Cancelled []string               `json:"cancelled"`
	Skipped   []SkippedOrderResponse `json:"skipped"`
}

// TrackingEventResponse is one entry of the public tracking timeline.
type TrackingEventResponse struct {
	EventType string    `json:"event_type"`
	OfficeID  string    `json:"office_id,omitempty"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TrackingResponse is the public tracking view of a shipment.
type TrackingResponse struct {
	TrackingCode string                  `json:"tracking_code"`
	Status       string                  `json:"status"`
	CurrentType  string                  `json:"current_type"`
	Events       []TrackingEventResponse `json:"events"`
}

// OfficeOrderResponse is one order on an office work queue.
type OfficeOrderResponse struct {
	OrderID      string `json:"order_id"`
	TrackingCode string `json:"tracking_code"`
	Status       string `json:"status"`
	CurrentType  string `json:"current_type"`
}
