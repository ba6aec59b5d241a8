package interfaces

import "github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"

// ParsedEmail is what the upstream parsing collaborator extracts from an
// uploaded .eml file. Fields the parser could not determine stay zero.
type ParsedEmail struct {
	CustomerName     string
	CustomerEmail    string
	Subject          string
	Reference        string
	ShippingMode     entities.TransportMode
	Origin           string
	Destination      string
	TotalWeightKG    *float64
	IsDangerousGoods bool
	Urgency          entities.Urgency
	BodyText         string
}

// IEmailParser abstracts the intake email parser. Parsing is an opaque
// upstream step: a failure still produces a trackable RFQ.
type IEmailParser interface {
	Parse(filename string, data []byte) (ParsedEmail, error)
}
