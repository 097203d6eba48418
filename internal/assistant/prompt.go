package assistant

import (
	"fmt"
	"strings"

	"rjgems-backend/internal/models"
)

// SystemPrompt frames every generation request.
const SystemPrompt = `You are a luxury jewelry AI assistant for RJ GEMS, a premium jewelry e-commerce store specializing in fine jewelry and luxury accessories.

About RJ GEMS:
- We are a premium jewelry retailer offering high-quality engagement rings, wedding bands, necklaces, earrings, and bracelets
- Our collection features pieces in 14k Gold, Sterling Silver, Rose Gold, White Gold, and Platinum
- We offer jewelry for special occasions: engagement, wedding, anniversary, birthday, and everyday wear
- Our products range from affordable luxury to high-end pieces
- We focus on quality craftsmanship and customer satisfaction
- We provide expert jewelry care advice and sizing guidance

Keep your responses concise, friendly, and helpful. When users ask for products, search the database and show them relevant items. For general questions, provide brief, informative answers.

Be warm and welcoming, like a helpful jewelry consultant. Keep responses short and to the point unless showing products. Always represent RJ GEMS as a trusted luxury jewelry destination.`

// redirectPrompt is appended when a long conversation has drifted away from
// jewelry entirely.
const redirectPrompt = "\n\nThe conversation has drifted off topic. Gently guide the customer back to jewelry."

// BuildPrompt folds the transcript, any product context, and the new message
// into a single prompt for the text model. When the message was a product
// question but the search found nothing, the model is told so instead of
// being left to invent inventory.
func BuildPrompt(history []Turn, message string, products []models.Product, productQuery bool) string {
	var b strings.Builder
	b.WriteString(SystemPrompt)
	b.WriteString("\n\n")

	if len(history) > 0 {
		b.WriteString("Previous conversation:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
		b.WriteString("\n")
	}

	if productQuery {
		if len(products) > 0 {
			b.WriteString(FormatProducts(products))
		} else {
			b.WriteString(NoMatchContext)
		}
	}

	if !OnTopic(history) {
		b.WriteString(redirectPrompt)
	}

	fmt.Fprintf(&b, "\nUser: %s\n\nAssistant:", message)
	return b.String()
}

// FormatProducts renders catalog hits as prompt context so the model can
// talk about real inventory.
func FormatProducts(products []models.Product) string {
	var b strings.Builder
	b.WriteString("\n\nHere are some beautiful pieces from our collection:\n")
	for i, p := range products {
		fmt.Fprintf(&b, "%d. %s - %s in %s\n", i+1, p.Name, p.Category, p.MetalType)
		if p.OriginalPrice > p.Price {
			fmt.Fprintf(&b, "   Price: $%.0f (was $%.0f)\n", p.Price, p.OriginalPrice)
		} else {
			fmt.Fprintf(&b, "   Price: $%.0f\n", p.Price)
		}
		if p.Specifications.StoneType != "" {
			fmt.Fprintf(&b, "   Stone: %s\n", p.Specifications.StoneType)
		}
		if p.Specifications.Weight != "" {
			fmt.Fprintf(&b, "   Weight: %s\n", p.Specifications.Weight)
		}
		if p.Specifications.Setting != "" {
			fmt.Fprintf(&b, "   Setting: %s\n", p.Specifications.Setting)
		}
		fmt.Fprintf(&b, "   Rating: %.1f/5 stars\n", p.Rating)
		if p.Stock > 0 {
			fmt.Fprintf(&b, "   Stock: %d available\n", p.Stock)
		} else {
			b.WriteString("   Stock: Out of stock\n")
		}
		fmt.Fprintf(&b, "   Description: %s\n\n", truncate(p.Description, 120))
	}
	b.WriteString("I've found these stunning pieces for you! Click 'View Details' on any product to see more information and add it to your cart.")
	return b.String()
}

// NoMatchContext is the prompt context used when the search found nothing.
const NoMatchContext = "\n\nI couldn't find specific products matching your query in our current inventory, but I'd be happy to help you with general jewelry advice or suggest similar alternatives!"

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
