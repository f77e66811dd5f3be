package templates

import (
	"fmt"
	"strings"
	"text/template"
)

// Data carries the values a template may reference. Callers fill only the
// fields their message kind uses; unreferenced fields are ignored.
type Data struct {
	Subject          string
	OrderID          string
	OrderRef         string
	ProductName      string
	Price            string
	Quantity         string
	ShippingCharge   string
	Total            string
	MissingFields    string
	CustomerEmail    string
	VendorStatus     string
	PaymentAmount    string
	CertificateCount int
}

// Message is a rendered subject and body ready to send.
type Message struct {
	Subject string
	Body    string
}

// Render executes a template's subject and body against data.
// Failures wrap ErrRender.
func Render(t Template, data Data) (Message, error) {
	subject, err := render("subject", t.Subject, data)
	if err != nil {
		return Message{}, fmt.Errorf("%w: %s subject: %v", ErrRender, t.Kind, err)
	}

	body, err := render("body", t.Body, data)
	if err != nil {
		return Message{}, fmt.Errorf("%w: %s body: %v", ErrRender, t.Kind, err)
	}

	return Message{Subject: subject, Body: body}, nil
}

func render(name, source string, data Data) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(source)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", err
	}

	return out.String(), nil
}
