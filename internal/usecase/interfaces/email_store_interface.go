package interfaces

import "context"

// IEmailStore retains the raw uploaded email so the original request stays
// auditable after parsing. Save returns the reference recorded on the RFQ.
type IEmailStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}
