package store

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// looseIntHook parses integers the way spreadsheets write them: grouped
// digits ("1,234"), surrounding whitespace, empty cells as zero.
func looseIntHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Int {
			return data, nil
		}
		s := strings.TrimSpace(strings.ReplaceAll(data.(string), ",", ""))
		if s == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", data.(string))
		}
		return n, nil
	}
}

// trimStringHook trims surrounding whitespace off every decoded string field.
func trimStringHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() == reflect.String && to.Kind() == reflect.String {
			return strings.TrimSpace(data.(string)), nil
		}
		return data, nil
	}
}

var rowDecodeHook = mapstructure.ComposeDecodeHookFunc(
	looseIntHook(),
	trimStringHook(),
)

// DecodeRow decodes a row into a tagged struct. Unconsumed columns land in a
// `mapstructure:",remain"` field when the target declares one.
func DecodeRow(row Row, out interface{}) error {
	cfg := &mapstructure.DecoderConfig{
		DecodeHook: rowDecodeHook,
		Result:     out,
		TagName:    "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return fmt.Errorf("row decoder: %w", err)
	}
	if err := dec.Decode(map[string]string(row)); err != nil {
		return fmt.Errorf("decode row: %w", err)
	}
	return nil
}

// NormalizeKeys rewrites alternate header spellings onto canonical field
// names so DecodeRow can match struct tags. For each canonical name the first
// present alias wins; every consumed alias is dropped so pass-through capture
// does not duplicate known fields. Unknown keys are left untouched.
func NormalizeKeys(row Row, aliases map[string][]string) Row {
	out := make(Row, len(row))
	consumed := make(map[string]bool)
	for canonical, alts := range aliases {
		for _, a := range alts {
			a = strings.ToLower(a)
			if v, ok := row[a]; ok {
				if _, done := out[canonical]; !done {
					out[canonical] = v
				}
				consumed[a] = true
			}
		}
	}
	for k, v := range row {
		if !consumed[k] {
			if _, done := out[k]; !done {
				out[k] = v
			}
		}
	}
	return out
}
