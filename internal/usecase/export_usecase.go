package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
)

var ErrInvalidExportFormat = errors.New("invalid export format")

// DraftPack is a serialized RFQ handover document for ERP entry.
type DraftPack struct {
	RFQID        string
	RFQReference string
	Format       string
	ExportedAt   time.Time
	Filename     string
	ContentType  string
	RawBytes     []byte
}

// draftPackData is the structured payload behind every export format.
type draftPackData struct {
	ExportMetadata struct {
		RFQID               string `json:"rfq_id"`
		RFQReference        string `json:"rfq_reference,omitempty"`
		Status              string `json:"status"`
		OdooQuotationNumber string `json:"odoo_quotation_number,omitempty"`
		ExportedAt          string `json:"exported_at"`
	} `json:"export_metadata"`
	Customer struct {
		Name  string `json:"name,omitempty"`
		Email string `json:"email,omitempty"`
	} `json:"customer"`
	Shipment struct {
		Origin           string   `json:"origin,omitempty"`
		Destination      string   `json:"destination,omitempty"`
		ShippingMode     string   `json:"shipping_mode,omitempty"`
		Urgency          string   `json:"urgency"`
		IsDangerousGoods bool     `json:"is_dangerous_goods"`
		TotalWeightKG    *float64 `json:"total_weight_kg,omitempty"`
	} `json:"shipment"`
	Rate   *entities.Rate `json:"rate,omitempty"`
	Totals struct {
		EstimatedCost *float64 `json:"estimated_cost,omitempty"`
		Currency      string   `json:"currency"`
	} `json:"totals"`
	Timestamps struct {
		ReceivedAt         string `json:"received_at"`
		ParsingCompletedAt string `json:"parsing_completed_at,omitempty"`
		RateFoundAt        string `json:"rate_found_at,omitempty"`
		QuoteDraftedAt     string `json:"quote_drafted_at,omitempty"`
		QuoteSentAt        string `json:"quote_sent_at,omitempty"`
	} `json:"timestamps"`
	AuditLog []entities.AuditLogEntry `json:"audit_log"`
}

// IExportUseCase generates draft packs in json, csv or pdf.
type IExportUseCase interface {
	Export(ctx context.Context, rfqID, format string) (DraftPack, error)
}

type ExportUseCase struct {
	rfqs         interfaces.IRFQRepository
	rates        interfaces.IRateRepository
	audit        interfaces.IAuditLogRepository
	clock        interfaces.Clock
	storeTimeout time.Duration
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(
	rfqs interfaces.IRFQRepository,
	rates interfaces.IRateRepository,
	audit interfaces.IAuditLogRepository,
	clock interfaces.Clock,
	storeTimeout time.Duration,
) *ExportUseCase {
	if clock == nil {
		clock = interfaces.RealClock{}
	}
	return &ExportUseCase{rfqs: rfqs, rates: rates, audit: audit, clock: clock, storeTimeout: storeTimeout}
}

func (u *ExportUseCase) Export(ctx context.Context, rfqID, format string) (DraftPack, error) {
	switch format {
	case "json", "csv", "pdf":
	default:
		return DraftPack{}, fmt.Errorf("%w: %q", ErrInvalidExportFormat, format)
	}

	var rfq entities.RFQ
	err := callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
		var err error
		rfq, err = u.rfqs.GetByID(ctx, rfqID)
		return err
	})
	if err != nil {
		return DraftPack{}, err
	}
	if rfq.ID == "" {
		return DraftPack{}, ErrRFQNotFound
	}

	data, err := u.buildData(ctx, rfq)
	if err != nil {
		return DraftPack{}, err
	}

	now := u.clock.Now()
	data.ExportMetadata.ExportedAt = now.Format(time.RFC3339)
	base := rfq.RFQReference
	if base == "" {
		base = rfq.ID
	}
	filename := fmt.Sprintf("draft_pack_%s_%s", base, now.Format("20060102_150405"))

	pack := DraftPack{
		RFQID:        rfq.ID,
		RFQReference: rfq.RFQReference,
		Format:       format,
		ExportedAt:   now,
	}

	switch format {
	case "json":
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return DraftPack{}, err
		}
		pack.RawBytes = raw
		pack.Filename = filename + ".json"
		pack.ContentType = "application/json"
	case "csv":
		pack.RawBytes = renderCSV(data)
		pack.Filename = filename + ".csv"
		pack.ContentType = "text/csv"
	case "pdf":
		raw, err := renderPDF(data)
		if err != nil {
			return DraftPack{}, err
		}
		pack.RawBytes = raw
		pack.Filename = filename + ".pdf"
		pack.ContentType = "application/pdf"
	}
	return pack, nil
}

func (u *ExportUseCase) buildData(ctx context.Context, rfq entities.RFQ) (draftPackData, error) {
	var data draftPackData

	data.ExportMetadata.RFQID = rfq.ID
	data.ExportMetadata.RFQReference = rfq.RFQReference
	data.ExportMetadata.Status = string(rfq.Status)
	data.ExportMetadata.OdooQuotationNumber = rfq.OdooQuotationNumber

	data.Customer.Name = rfq.CustomerName
	data.Customer.Email = rfq.CustomerEmail

	data.Shipment.Origin = rfq.Origin
	data.Shipment.Destination = rfq.Destination
	data.Shipment.ShippingMode = string(rfq.ShippingMode)
	data.Shipment.Urgency = string(rfq.Urgency)
	data.Shipment.IsDangerousGoods = rfq.IsDangerousGoods
	data.Shipment.TotalWeightKG = rfq.TotalWeightKG

	data.Totals.EstimatedCost = rfq.EstimatedCost
	data.Totals.Currency = rfq.RateCurrency
	if data.Totals.Currency == "" {
		data.Totals.Currency = "USD"
	}

	data.Timestamps.ReceivedAt = rfq.ReceivedAt.Format(time.RFC3339)
	data.Timestamps.ParsingCompletedAt = formatOptional(rfq.ParsingCompletedAt)
	data.Timestamps.RateFoundAt = formatOptional(rfq.RateFoundAt)
	data.Timestamps.QuoteDraftedAt = formatOptional(rfq.QuoteDraftedAt)
	data.Timestamps.QuoteSentAt = formatOptional(rfq.QuoteSentAt)

	if rfq.RateID != "" {
		var rate entities.Rate
		err := callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
			var err error
			rate, err = u.rates.GetByID(ctx, rfq.RateID)
			return err
		})
		if err != nil {
			return draftPackData{}, err
		}
		if rate.ID != "" {
			data.Rate = &rate
		}
	}

	err := callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
		var err error
		data.AuditLog, err = u.audit.ListByRFQ(ctx, rfq.ID)
		return err
	})
	if err != nil {
		return draftPackData{}, err
	}
	return data, nil
}

func renderCSV(data draftPackData) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	write := func(fields ...string) { _ = w.Write(fields) }
	write("RFQ Draft Pack Export")
	write()
	write("METADATA")
	write("RFQ ID", data.ExportMetadata.RFQID)
	write("Reference", data.ExportMetadata.RFQReference)
	write("Status", data.ExportMetadata.Status)
	write("Odoo Quote #", data.ExportMetadata.OdooQuotationNumber)
	write()
	write("CUSTOMER")
	write("Name", data.Customer.Name)
	write("Email", data.Customer.Email)
	write()
	write("SHIPMENT")
	write("Origin", data.Shipment.Origin)
	write("Destination", data.Shipment.Destination)
	write("Mode", data.Shipment.ShippingMode)
	write("Urgency", data.Shipment.Urgency)
	write("Dangerous Goods", fmt.Sprintf("%t", data.Shipment.IsDangerousGoods))
	write()
	if data.Rate != nil {
		write("RATE")
		write("Carrier", data.Rate.CarrierName)
		write("Route", fmt.Sprintf("%s → %s", data.Rate.OriginPort, data.Rate.DestinationPort))
		write("Rate Per Unit", fmt.Sprintf("%.2f %s/%s", data.Rate.RatePerUnit, data.Rate.Currency, data.Rate.Unit))
		write()
	}
	write("TOTALS")
	if data.Totals.EstimatedCost != nil {
		write("Estimated Cost", fmt.Sprintf("%.2f %s", *data.Totals.EstimatedCost, data.Totals.Currency))
	} else {
		write("Estimated Cost", "")
	}

	w.Flush()
	return buf.Bytes()
}

func renderPDF(data draftPackData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "RFQ Draft Pack")
	pdf.Ln(12)

	section := func(title string, rows [][2]string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range rows {
			pdf.Cell(50, 6, row[0])
			pdf.Cell(0, 6, row[1])
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	section("Metadata", [][2]string{
		{"RFQ ID", data.ExportMetadata.RFQID},
		{"Reference", data.ExportMetadata.RFQReference},
		{"Status", data.ExportMetadata.Status},
		{"Odoo Quote #", data.ExportMetadata.OdooQuotationNumber},
	})
	section("Customer", [][2]string{
		{"Name", data.Customer.Name},
		{"Email", data.Customer.Email},
	})
	section("Shipment", [][2]string{
		{"Origin", data.Shipment.Origin},
		{"Destination", data.Shipment.Destination},
		{"Mode", data.Shipment.ShippingMode},
		{"Urgency", data.Shipment.Urgency},
		{"Dangerous Goods", fmt.Sprintf("%t", data.Shipment.IsDangerousGoods)},
	})
	if data.Rate != nil {
		section("Rate", [][2]string{
			{"Carrier", data.Rate.CarrierName},
			{"Route", fmt.Sprintf("%s -> %s", data.Rate.OriginPort, data.Rate.DestinationPort)},
			{"Rate Per Unit", fmt.Sprintf("%.2f %s/%s", data.Rate.RatePerUnit, data.Rate.Currency, data.Rate.Unit)},
		})
	}
	cost := ""
	if data.Totals.EstimatedCost != nil {
		cost = fmt.Sprintf("%.2f %s", *data.Totals.EstimatedCost, data.Totals.Currency)
	}
	section("Totals", [][2]string{{"Estimated Cost", cost}})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
