package service

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/pageza/alchemorsel-chef/backend/internal/types"
)

// jsonSpan matches from the first '{' to the last '}' across newlines. It does not
// balance braces: stray braces in the prose widen the span, and a span that then
// fails to decode yields an empty record.
var jsonSpan = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractRecipe splits a model answer into its prose part and the embedded JSON
// object. The record is never nil; it is empty when no object could be decoded.
func ExtractRecipe(raw string) (string, map[string]any) {
	content := strings.TrimSpace(raw)

	span := jsonSpan.FindString(content)
	if span == "" {
		return content, map[string]any{}
	}

	data, err := decodeObject(span)
	if err != nil {
		data = map[string]any{}
	}

	return strings.TrimSpace(strings.ReplaceAll(content, span, "")), data
}

// decodeObject decodes exactly one JSON object, keeping numbers as written
func decodeObject(s string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}
	if data == nil {
		return nil, fmt.Errorf("JSON value is not an object")
	}
	return data, nil
}

// DecodeRecipeRecord converts the loose record into its typed view. Numbers are
// accepted where strings are expected.
func DecodeRecipeRecord(data map[string]any) (types.RecipeRecord, error) {
	var record types.RecipeRecord
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &record,
	})
	if err != nil {
		return record, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(data); err != nil {
		return record, fmt.Errorf("failed to decode recipe record: %w", err)
	}
	return record, nil
}
