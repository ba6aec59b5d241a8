package interfaces

import "context"

// QuotationDraft is the minimal payload the ERP needs to open a sale order.
type QuotationDraft struct {
	CustomerName string
	Reference    string
	Origin       string
	Destination  string
}

// QuotationRef identifies the draft created on the ERP side.
type QuotationRef struct {
	SaleOrderID     int
	QuotationNumber string
}

// IQuotationGateway abstracts the downstream ERP (Odoo/Cre-soft) used to
// draft and confirm quotations.
type IQuotationGateway interface {
	CreateSaleOrder(ctx context.Context, draft QuotationDraft) (QuotationRef, error)
	ConfirmQuotation(ctx context.Context, saleOrderID int) error
}
