package parsing

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
)

// EmailParser extracts RFQ fields from an RFC 822 .eml upload using
// header parsing plus lightweight body heuristics. It targets the
// body-only RFQs that make up most of the intake volume; attachments and
// richer extraction are an upstream concern.
type EmailParser struct{}

var _ interfaces.IEmailParser = (*EmailParser)(nil)

func NewEmailParser() *EmailParser {
	return &EmailParser{}
}

var (
	// e.g. OA/PO/BC-0000966
	refStructured = regexp.MustCompile(`\b[A-Z]{2,5}/[A-Z]{2,5}/[A-Z]{2,5}-\d{4,}\b`)
	// generic PO/RFQ style
	refGeneric = regexp.MustCompile(`(?i)\b(?:PO|P\.O\.|RFQ|REF)\s*[:#-]?\s*([A-Z0-9][A-Z0-9\-/]{5,})\b`)

	weightKG = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:kg|kgs|kilogram|kilograms)\b`)

	labeledOrigin      = regexp.MustCompile(`(?im)^\s*(?:origin|from|pol|port of loading)\s*[:\-]\s*([A-Za-z0-9 ,\-]+?)\s*$`)
	labeledDestination = regexp.MustCompile(`(?im)^\s*(?:destination|to|pod|port of discharge)\s*[:\-]\s*([A-Za-z0-9 ,\-]+?)\s*$`)
	routePhrase        = regexp.MustCompile(`\bfrom\s+([A-Z]{3,5})\s+to\s+([A-Z]{3,5})\b`)
)

var (
	airKeywords  = []string{"air freight", "air shipment", "by air", "iata", "airway bill", "awb"}
	seaKeywords  = []string{"sea freight", "ocean", "vessel", "by sea", "container", "bill of lading", "b/l"}
	roadKeywords = []string{"by road", "truck", "haulage", "road freight"}

	urgentKeywords = []string{"urgent", "asap", "immediately", "priority", "time-critical", "time critical"}

	dgKeywords = []string{"dangerous goods", "hazardous", "hazmat", "msds", "un number", "class 3", "class 8", "class 9"}
)

func (p *EmailParser) Parse(filename string, data []byte) (interfaces.ParsedEmail, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(data))
	if err != nil {
		return interfaces.ParsedEmail{}, err
	}

	out := interfaces.ParsedEmail{Urgency: entities.UrgencyStandard}

	if addr, err := mail.ParseAddress(msg.Header.Get("From")); err == nil {
		out.CustomerName = strings.TrimSpace(addr.Name)
		out.CustomerEmail = strings.TrimSpace(addr.Address)
	}
	out.Subject = decodeHeader(msg.Header.Get("Subject"))

	body, err := extractPlainText(msg)
	if err != nil {
		// Headers alone are still useful; body heuristics just stay empty.
		body = ""
	}
	out.BodyText = strings.TrimSpace(body)

	combined := out.Subject + "\n\n" + out.BodyText
	out.Reference = extractReference(combined)
	out.ShippingMode = guessMode(combined)
	out.Urgency = guessUrgency(combined, msg.Header.Get("Importance"), msg.Header.Get("X-Priority"))
	out.TotalWeightKG = extractTotalWeightKG(combined)
	out.IsDangerousGoods = containsAny(strings.ToLower(combined), dgKeywords)
	out.Origin, out.Destination = extractRoute(combined)

	return out, nil
}

func decodeHeader(v string) string {
	dec := new(mime.WordDecoder)
	decoded, err := dec.DecodeHeader(v)
	if err != nil {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(decoded)
}

// extractPlainText prefers the first text/plain part of a multipart
// message, falling back to the raw body for single-part messages.
func extractPlainText(msg *mail.Message) (string, error) {
	contentType := msg.Header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return readBody(msg.Body, msg.Header.Get("Content-Transfer-Encoding"))
	}

	mr := multipart.NewReader(msg.Body, params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		disp := part.Header.Get("Content-Disposition")
		if strings.HasPrefix(disp, "attachment") {
			continue
		}
		partType, _, _ := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if partType == "text/plain" {
			return readBody(part, part.Header.Get("Content-Transfer-Encoding"))
		}
	}
}

func readBody(r io.Reader, encoding string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(encoding), "quoted-printable") {
		r = quotedprintable.NewReader(r)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func extractReference(text string) string {
	if m := refStructured.FindString(text); m != "" {
		return m
	}
	if m := refGeneric.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func guessMode(text string) entities.TransportMode {
	t := strings.ToLower(text)
	switch {
	case containsAny(t, airKeywords):
		return entities.ModeAir
	case containsAny(t, seaKeywords):
		return entities.ModeSea
	case containsAny(t, roadKeywords):
		return entities.ModeRoad
	}
	return ""
}

func guessUrgency(text, importance, xPriority string) entities.Urgency {
	if containsAny(strings.ToLower(text), urgentKeywords) {
		return entities.UrgencyUrgent
	}
	if strings.EqualFold(strings.TrimSpace(importance), "high") {
		return entities.UrgencyUrgent
	}
	if p := strings.TrimSpace(xPriority); p != "" {
		if n, err := strconv.Atoi(p[:1]); err == nil && n <= 2 {
			return entities.UrgencyUrgent
		}
	}
	return entities.UrgencyStandard
}

// extractTotalWeightKG takes the largest weight mention as a rough total.
func extractTotalWeightKG(text string) *float64 {
	var max float64
	found := false
	for _, m := range weightKG.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if !found || v > max {
			max = v
			found = true
		}
	}
	if !found {
		return nil
	}
	return &max
}

func extractRoute(text string) (origin, destination string) {
	if m := labeledOrigin.FindStringSubmatch(text); m != nil {
		origin = strings.TrimSpace(m[1])
	}
	if m := labeledDestination.FindStringSubmatch(text); m != nil {
		destination = strings.TrimSpace(m[1])
	}
	if origin == "" || destination == "" {
		if m := routePhrase.FindStringSubmatch(text); m != nil {
			if origin == "" {
				origin = m[1]
			}
			if destination == "" {
				destination = m[2]
			}
		}
	}
	return origin, destination
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
