package api

import (
	"github.com/shipdesk/shipdesk/internal/config"
	"github.com/shipdesk/shipdesk/pkg/openapi"
)

// buildSpec constructs the OpenAPI document describing the API module.
func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Order": {
			Type:        "object",
			Description: "One customer inquiry's lifecycle record",
			Properties: map[string]*openapi.Schema{
				"id":               {Type: "string", Format: "uuid"},
				"customer_email":   {Type: "string"},
				"raw_text":         {Type: "string", Description: "Original email body"},
				"reply_text":       {Type: "string", Description: "Reply sent at intake"},
				"order_ref":        {Type: "string", Description: "Customer-supplied order token"},
				"product_name":     {Type: "string"},
				"price":            {Type: "string"},
				"quantity":         {Type: "string"},
				"query_type":       {Type: "string", Enum: []any{"order", "shipping"}},
				"complete":         {Type: "boolean"},
				"vendor_email":     {Type: "string"},
				"vendor_status":    {Type: "string"},
				"payment_amount":   {Type: "string"},
				"manager_decision": {Type: "string", Enum: []any{"Approved", "Rejected"}},
				"stage": {
					Type: "string",
					Enum: []any{"created", "awaiting_vendor", "vendor_responded", "closed_approved", "closed_rejected"},
				},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"Certificate": {
			Type:        "object",
			Description: "Stored reference to a vendor-supplied PDF",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"order_id":    {Type: "string", Format: "uuid"},
				"position":    {Type: "integer", Example: 1},
				"filename":    {Type: "string"},
				"storage_key": {Type: "string"},
				"page_count":  {Type: "integer"},
				"received_at": {Type: "string", Format: "date-time"},
			},
		},
		"CreateOrder": {
			Type:     "object",
			Required: []string{"customer_email", "query_type"},
			Properties: map[string]*openapi.Schema{
				"customer_email": {Type: "string"},
				"raw_text":       {Type: "string"},
				"order_ref":      {Type: "string"},
				"product_name":   {Type: "string"},
				"price":          {Type: "string"},
				"quantity":       {Type: "string"},
				"query_type":     {Type: "string", Enum: []any{"order", "shipping"}},
				"complete":       {Type: "boolean"},
			},
		},
		"VendorTarget": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"vendor_email":    {Type: "string", Description: "Overrides the configured vendor address"},
				"shipping_charge": {Type: "string", Description: "Overrides the configured flat shipping charge (dispatch only)"},
			},
		},
		"DecisionResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"order": openapi.SchemaRef("Order"),
				"notifications": {
					Type:  "array",
					Items: openapi.SchemaRef("NotificationResult"),
				},
			},
		},
		"NotificationResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"recipient": {Type: "string"},
				"kind":      {Type: "string"},
				"sent":      {Type: "boolean"},
				"error":     {Type: "string"},
			},
		},
		"Template": {
			Type:        "object",
			Description: "Message template for one workflow email kind",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"kind":        {Type: "string"},
				"subject":     {Type: "string"},
				"body":        {Type: "string"},
				"description": {Type: "string"},
				"active":      {Type: "boolean"},
			},
		},
		"CustomerRun": {
			Type:        "object",
			Description: "Summary of one customer intake pass",
			Properties: map[string]*openapi.Schema{
				"polled":   {Type: "integer"},
				"outcomes": {Type: "array", Items: &openapi.Schema{Type: "object"}},
			},
		},
		"VendorRun": {
			Type:        "object",
			Description: "Summary of one vendor intake pass",
			Properties: map[string]*openapi.Schema{
				"polled":   {Type: "integer"},
				"outcomes": {Type: "array", Items: &openapi.Schema{Type: "object"}},
			},
		},
	})

	orderTag := []string{"orders"}
	templateTag := []string{"templates"}
	intakeTag := []string{"intake"}

	spec.Paths["/orders"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List orders",
			Tags:    orderTag,
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("stage", "string", "Filter by lifecycle stage", false),
				openapi.QueryParam("query_type", "string", "Filter by query type", false),
				openapi.QueryParam("review_queue", "boolean", "Only records awaiting a manager decision", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated orders", "Order"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Create an order record",
			Tags:        orderTag,
			RequestBody: openapi.RequestBodyJSON("CreateOrder", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created record", "Order"),
				400: openapi.ResponseRef("BadRequest"),
				422: openapi.ResponseRef("UnprocessableEntity"),
			},
		},
	}

	spec.Paths["/orders/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Search orders",
			Tags:    orderTag,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated orders", "Order"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/orders/review"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List the review queue",
			Tags:    orderTag,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Orders with a vendor response awaiting a decision", "Order"),
			},
		},
	}

	spec.Paths["/orders/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find an order",
			Tags:       orderTag,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Order record ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("The record", "Order"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/orders/{id}/certificates"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List an order's certificates",
			Tags:       orderTag,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Order record ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Certificate references", "Certificate"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/orders/{id}/dispatch"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Send the order to the vendor",
			Tags:        orderTag,
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Order record ID")},
			RequestBody: openapi.RequestBodyJSON("VendorTarget", false),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Record now awaiting the vendor", "Order"),
				404: openapi.ResponseRef("NotFound"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/orders/{id}/enquiry"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Ask the vendor for shipment status",
			Tags:        orderTag,
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Order record ID")},
			RequestBody: openapi.RequestBodyJSON("VendorTarget", false),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Record now awaiting the vendor", "Order"),
				404: openapi.ResponseRef("NotFound"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/orders/{id}/approve"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Approve a reconciled record",
			Tags:       orderTag,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Order record ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Closed record with notification outcomes", "DecisionResult"),
				404: openapi.ResponseRef("NotFound"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/orders/{id}/reject"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Reject a reconciled record",
			Tags:       orderTag,
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Order record ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Closed record with notification outcomes", "DecisionResult"),
				404: openapi.ResponseRef("NotFound"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/templates"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List templates",
			Tags:    templateTag,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated templates", "Template"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Create a template",
			Tags:        templateTag,
			RequestBody: openapi.RequestBodyJSON("Template", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created template", "Template"),
				409: openapi.ResponseRef("Conflict"),
				422: openapi.ResponseRef("UnprocessableEntity"),
			},
		},
	}

	spec.Paths["/intake/customers"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Run one customer intake pass",
			Tags:    intakeTag,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Pass summary", "CustomerRun"),
			},
		},
	}

	spec.Paths["/intake/vendors"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Run one vendor intake pass",
			Tags:    intakeTag,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Pass summary", "VendorRun"),
			},
		},
	}

	return spec
}
