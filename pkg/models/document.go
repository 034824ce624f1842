package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// excludedDocumentFields are store-internal fields stripped from a raw
// document before it is mapped onto a model.
var excludedDocumentFields = map[string]struct{}{
	"_id": {},
}

// decodeDocument maps a raw store document onto a model, dropping internal
// fields first. Field names follow the model's json tags. Numeric types are
// decoded weakly because document stores do not preserve Go integer widths.
func decodeDocument(doc map[string]any, out any) error {
	cleaned := make(map[string]any, len(doc))
	for k, v := range doc {
		if _, internal := excludedDocumentFields[k]; internal {
			continue
		}
		cleaned[k] = v
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("error creating document decoder: %w", err)
	}

	if err := dec.Decode(cleaned); err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}

	return nil
}
