package gift

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/presently/presently-api/internal/domain"
)

// SuggestionCount is the number of gift ideas requested from the model.
const SuggestionCount = 6

// BuildPrompt renders the generation request for a recipient.
// It is a pure function of its input and performs no validation.
func BuildPrompt(r domain.Recipient) string {
	var b strings.Builder

	b.WriteString("I need gift suggestions for someone with the following characteristics:\n")
	fmt.Fprintf(&b, "- Name: %s\n", r.Name)
	fmt.Fprintf(&b, "- Age: %d\n", r.Age)
	fmt.Fprintf(&b, "- Gender: %s\n", r.Gender)
	fmt.Fprintf(&b, "- Relationship: %s\n", r.Relationship)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(r.Interests, ", "))
	fmt.Fprintf(&b, "- Occasion: %s\n", r.Occasion)
	fmt.Fprintf(&b, "- Budget: $%s - $%s\n", formatAmount(r.Budget.Min), formatAmount(r.Budget.Max))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Please suggest exactly %d personalized gift ideas that match these criteria. For each gift, provide:\n",
		SuggestionCount)
	b.WriteString("1. name\n")
	b.WriteString("2. description\n")
	b.WriteString("3. price in dollars, as a number within the budget range\n")
	b.WriteString("4. category\n")
	b.WriteString("\n")
	b.WriteString("Format the response as a JSON object with the following structure:\n")
	b.WriteString(`{"gifts": [{"name": "Gift name", "description": "Gift description", "price": 99.99, "category": "Category"}]}`)
	b.WriteString("\n")

	return b.String()
}

// formatAmount prints a dollar amount without trailing zeros ("500", "49.99").
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
