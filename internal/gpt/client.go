// Package gpt asks the OpenAI Responses API for a reply as strict JSON.
package gpt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

type Client struct {
	client *openai.Client
	model  string
}

// NewClient builds a client. Extra options (base URL, retries) are appended
// after the API key.
func NewClient(apiKey, model string, opts ...option.RequestOption) *Client {
	all := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	c := openai.NewClient(all...)
	return &Client{client: &c, model: model}
}

func (c *Client) Model() string {
	return c.model
}

type replyPayload struct {
	Reply string `json:"reply" jsonschema:"required,description=The message to send back"`
}

var replySchema = generateSchema[replyPayload]()

// Reply sends instructions and input and returns the trimmed "reply" field.
func (c *Client) Reply(ctx context.Context, instructions, input string, maxTokens int64) (string, error) {
	if c.model == "" {
		return "", errors.New("gpt: model is empty")
	}

	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(maxTokens),
		Instructions:    openai.String(instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(input, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:        "Reply",
					Schema:      replySchema,
					Strict:      openai.Bool(true),
					Description: openai.String("Suggested reply JSON"),
					Type:        "json_schema",
				},
			},
		},
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("responses call: %w", err)
	}

	var out replyPayload
	if err := decodeModelJSON(resp.OutputText(), &out); err != nil {
		return "", fmt.Errorf("decode reply: %w", err)
	}
	return strings.TrimSpace(out.Reply), nil
}

func decodeModelJSON(outputText string, v any) error {
	s := strings.TrimSpace(outputText)
	if s == "" {
		return io.ErrUnexpectedEOF
	}
	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end <= start {
		return fmt.Errorf("no JSON object in model output (len=%d)", len(s))
	}
	if err := json.Unmarshal([]byte(s[start:end+1]), v); err != nil {
		return fmt.Errorf("unmarshal extracted JSON: %w", err)
	}
	return nil
}

func generateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	b, err := reflector.Reflect(v).MarshalJSON()
	if err != nil {
		panic(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		panic(err)
	}
	// Strict mode rejects these keys.
	delete(m, "$schema")
	delete(m, "$id")
	m["additionalProperties"] = false
	return m
}
