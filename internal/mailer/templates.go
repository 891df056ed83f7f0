package mailer

import (
	"fmt"
	"strings"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
)

// Plain-text bodies for the transactional emails. The storefront renders
// HTML separately; email stays text-only.

func OrderConfirmationSubject(orderNumber string) string {
	return fmt.Sprintf("Order %s confirmed", orderNumber)
}

func OrderConfirmationBody(order *domain.Order, items []domain.OrderItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", order.CustomerName)
	fmt.Fprintf(&b, "Thank you for your order %s.\n\n", order.OrderNumber)
	for _, item := range items {
		fmt.Fprintf(&b, "  %dx %s (%s): %.2f %s\n",
			item.Quantity, item.ProductName, item.ProductSKU, item.TotalPrice, order.Currency)
	}
	fmt.Fprintf(&b, "\nSubtotal: %.2f %s\n", order.Subtotal, order.Currency)
	fmt.Fprintf(&b, "Shipping: %.2f %s\n", order.ShippingCost, order.Currency)
	fmt.Fprintf(&b, "Tax:      %.2f %s\n", order.Tax, order.Currency)
	if order.Discount > 0 {
		fmt.Fprintf(&b, "Discount: -%.2f %s\n", order.Discount, order.Currency)
	}
	fmt.Fprintf(&b, "Total:    %.2f %s\n\n", order.Total, order.Currency)
	b.WriteString("We will notify you when your order ships.\n\nMotico Solutions\n")
	return b.String()
}

func QuoteReceivedSubject(quoteNumber string) string {
	return fmt.Sprintf("Quote request %s received", quoteNumber)
}

func QuoteReceivedBody(quote *domain.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", quote.CustomerName)
	fmt.Fprintf(&b, "We received your quote request %s and will get back to you shortly.\n\n", quote.QuoteNumber)
	b.WriteString("Motico Solutions\n")
	return b.String()
}

func QuoteResponseSubject(quoteNumber string) string {
	return fmt.Sprintf("Your quote %s is ready", quoteNumber)
}

func QuoteResponseBody(quote *domain.Quote, response string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", quote.CustomerName)
	fmt.Fprintf(&b, "Regarding your quote request %s:\n\n%s\n", quote.QuoteNumber, response)
	if quote.Total != nil {
		fmt.Fprintf(&b, "\nQuoted total: %.2f %s\n", *quote.Total, quote.Currency)
	}
	if quote.ValidUntil != nil {
		fmt.Fprintf(&b, "Valid until: %s\n", quote.ValidUntil.Format("January 2, 2006"))
	}
	b.WriteString("\nMotico Solutions\n")
	return b.String()
}

func PasswordResetSubject() string {
	return "Reset your password"
}

func PasswordResetBody(name, resetURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	b.WriteString("A password reset was requested for your account. Use the link below within one hour:\n\n")
	fmt.Fprintf(&b, "  %s\n\n", resetURL)
	b.WriteString("If you did not request this, you can ignore this email.\n\nMotico Solutions\n")
	return b.String()
}
