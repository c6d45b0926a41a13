package gemini

import (
	"encoding/json"

	"google.golang.org/genai"
)

// giftsReply is the expected top-level shape of the model reply.
// Gifts are decoded one by one so a malformed entry does not discard the rest.
type giftsReply struct {
	Gifts []json.RawMessage `json:"gifts"`
}

// giftSchema is a single gift as returned by the model.
// Pointer fields distinguish a missing value from a zero value.
type giftSchema struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
}

// responseSchema constrains the model output to {"gifts": [{name, description, price, category}]}.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"gifts": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"price":       {Type: genai.TypeNumber},
					"category":    {Type: genai.TypeString},
				},
				Required: []string{"name", "description", "price", "category"},
			},
		},
	},
	Required: []string{"gifts"},
}
