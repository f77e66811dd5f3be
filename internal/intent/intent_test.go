package intent_test

import (
	"testing"

	"github.com/shipdesk/shipdesk/internal/intent"
	"github.com/shipdesk/shipdesk/internal/templates"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name              string
		subject           string
		body              string
		expectedIgnored   bool
		expectedQueryType intent.QueryType
		expectedComplete  bool
		expectedReply     templates.Kind
	}{
		{
			name:            "vendor subject ignored",
			subject:         "Vendor Shipment Update",
			body:            "Order ID 5678 shipped",
			expectedIgnored: true,
		},
		{
			name:            "vendor mentioned anywhere in subject",
			subject:         "Fwd: note from our VENDOR team",
			body:            "hello",
			expectedIgnored: true,
		},
		{
			name:    "complete order request",
			subject: "Order Request",
			body: "I'd like to place an order for Product: Organic Oats.\n" +
				"Quantity: 5 packs\nPrice: ₹350 each\nOrder ID- 5678\n",
			expectedQueryType: intent.QueryOrder,
			expectedComplete:  true,
			expectedReply:     templates.KindCustomerOrderReceived,
		},
		{
			name:              "incomplete order request",
			subject:           "Order Request",
			body:              "I want to buy some oats, please confirm availability.",
			expectedQueryType: intent.QueryOrder,
			expectedComplete:  false,
			expectedReply:     templates.KindCustomerRequestMissing,
		},
		{
			name:              "shipping query with order id",
			subject:           "Any update?",
			body:              "When will my Order ID 5678 be delivered?",
			expectedQueryType: intent.QueryShipping,
			expectedComplete:  false,
			expectedReply:     templates.KindCustomerAckEscalate,
		},
		{
			name:              "shipping query without order id",
			subject:           "Any update?",
			body:              "Where is my order? It has not arrived yet.",
			expectedQueryType: intent.QueryShipping,
			expectedComplete:  false,
			expectedReply:     templates.KindCustomerRequestOrderID,
		},
		{
			name:    "shipping keywords win over complete fields",
			subject: "Order Request",
			body: "Product: Organic Oats\nOrder ID 5678\n" +
				"Could you confirm the delivery timeline?",
			expectedQueryType: intent.QueryShipping,
			expectedComplete:  true,
			expectedReply:     templates.KindCustomerAckEscalate,
		},
		{
			name:              "empty body is an incomplete order",
			subject:           "Hello",
			body:              "",
			expectedQueryType: intent.QueryOrder,
			expectedComplete:  false,
			expectedReply:     templates.KindCustomerRequestMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := intent.Classify(tt.subject, tt.body)

			if result.Ignored != tt.expectedIgnored {
				t.Fatalf("Ignored = %v, expected %v", result.Ignored, tt.expectedIgnored)
			}
			if result.Ignored {
				return
			}

			if result.QueryType != tt.expectedQueryType {
				t.Errorf("QueryType = %s, expected %s", result.QueryType, tt.expectedQueryType)
			}
			if result.Complete != tt.expectedComplete {
				t.Errorf("Complete = %v, expected %v", result.Complete, tt.expectedComplete)
			}
			if result.ReplyKind != tt.expectedReply {
				t.Errorf("ReplyKind = %s, expected %s", result.ReplyKind, tt.expectedReply)
			}
		})
	}
}
