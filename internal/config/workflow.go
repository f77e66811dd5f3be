package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

const (
	EnvWorkflowVendorEmail    = "SHIPDESK_WORKFLOW_VENDOR_EMAIL"
	EnvWorkflowShippingCharge = "SHIPDESK_WORKFLOW_SHIPPING_CHARGE"
)

// WorkflowConfig holds order workflow parameters: the default vendor
// address used when a dispatch does not name one, and the flat shipping
// charge applied to order totals.
type WorkflowConfig struct {
	VendorEmail    string `toml:"vendor_email"`
	ShippingCharge string `toml:"shipping_charge"`
}

// ShippingChargeAmount returns ShippingCharge as a decimal.
func (c *WorkflowConfig) ShippingChargeAmount() decimal.Decimal {
	amount, err := decimal.NewFromString(c.ShippingCharge)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WorkflowConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *WorkflowConfig) Merge(overlay *WorkflowConfig) {
	if overlay.VendorEmail != "" {
		c.VendorEmail = overlay.VendorEmail
	}
	if overlay.ShippingCharge != "" {
		c.ShippingCharge = overlay.ShippingCharge
	}
}

func (c *WorkflowConfig) loadDefaults() {
	if c.ShippingCharge == "" {
		c.ShippingCharge = "50"
	}
}

func (c *WorkflowConfig) loadEnv() {
	if v := os.Getenv(EnvWorkflowVendorEmail); v != "" {
		c.VendorEmail = v
	}
	if v := os.Getenv(EnvWorkflowShippingCharge); v != "" {
		c.ShippingCharge = v
	}
}

func (c *WorkflowConfig) validate() error {
	if _, err := decimal.NewFromString(c.ShippingCharge); err != nil {
		return fmt.Errorf("invalid shipping_charge: %w", err)
	}
	return nil
}
