package erp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
)

var ErrOdooGatewayNotConfigured = errors.New("odoo gateway not configured")

// OdooGateway drafts and confirms quotations on the downstream ERP.
//
// Mock mode (the default until the live integration is commissioned)
// simulates the Odoo sale-order API in process: sequential order ids
// starting at 1001 with S%05d quotation numbers. Setting ODOO_MOCK=false
// opts out and fails fast instead of silently faking quotations.
type OdooGateway struct {
	log      *zap.Logger
	mockMode bool

	mu      sync.Mutex
	counter int
}

var _ interfaces.IQuotationGateway = (*OdooGateway)(nil)

func NewOdooGateway(log *zap.Logger) (*OdooGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !isOdooMockEnabled() {
		log.Error("live odoo integration not available yet, set ODOO_MOCK to run against the simulator")
		return nil, ErrOdooGatewayNotConfigured
	}
	log.Info("odoo gateway mock mode enabled")
	return &OdooGateway{log: log, mockMode: true, counter: 1000}, nil
}

func (g *OdooGateway) CreateSaleOrder(ctx context.Context, draft interfaces.QuotationDraft) (interfaces.QuotationRef, error) {
	if g == nil || !g.mockMode {
		return interfaces.QuotationRef{}, ErrOdooGatewayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return interfaces.QuotationRef{}, err
	}

	g.mu.Lock()
	g.counter++
	id := g.counter
	g.mu.Unlock()

	ref := interfaces.QuotationRef{
		SaleOrderID:     id,
		QuotationNumber: fmt.Sprintf("S%05d", id),
	}
	g.log.Info("mock sale order drafted",
		zap.Int("sale_order_id", ref.SaleOrderID),
		zap.String("quotation_number", ref.QuotationNumber),
		zap.String("customer", draft.CustomerName),
		zap.String("reference", draft.Reference))
	return ref, nil
}

func (g *OdooGateway) ConfirmQuotation(ctx context.Context, saleOrderID int) error {
	if g == nil || !g.mockMode {
		return ErrOdooGatewayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	g.log.Info("mock quotation confirmed", zap.Int("sale_order_id", saleOrderID))
	return nil
}

func isOdooMockEnabled() bool {
	for _, key := range []string{"ODOO_MOCK", "ERP_GATEWAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "0", "false", "no", "off":
			return false
		}
	}
	return true
}
