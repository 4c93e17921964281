package repository

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// Records are stored as KV hashes: one hash field per top-level JSON field,
// each holding that field's JSON encoding. Fields a value omits are written
// as null so a rewrite clears what the previous version had set.

var fieldCache sync.Map // reflect.Type -> map[string]reflect.Type

func jsonFields(t reflect.Type) map[string]reflect.Type {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]reflect.Type)
	}
	out := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag := f.Tag.Get("json"); tag != "" {
			if tag == "-" {
				continue
			}
			if n, _, _ := strings.Cut(tag, ","); n != "" {
				name = n
			}
		}
		out[name] = f.Type
	}
	fieldCache.Store(t, out)
	return out
}

func encodeHash(v any) (map[string]string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode record")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, errors.Wrap(err, "split record fields")
	}

	out := make(map[string]string, len(raw))
	for k, val := range raw {
		out[k] = string(val)
	}
	for name := range jsonFields(reflect.Indirect(reflect.ValueOf(v)).Type()) {
		if _, ok := out[name]; !ok {
			out[name] = "null"
		}
	}
	return out, nil
}

// decodeHash tolerates legacy writers that stored plain strings without JSON
// quoting, including numeric-looking plates in string fields.
func decodeHash(fields map[string]string, v any) error {
	types := jsonFields(reflect.Indirect(reflect.ValueOf(v)).Type())
	obj := make(map[string]json.RawMessage, len(fields))
	for k, val := range fields {
		obj[k] = normalizeField(val, types[k])
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return errors.Wrap(err, "join record fields")
	}
	if err := json.Unmarshal(b, v); err != nil {
		return errors.Wrap(err, "decode record")
	}
	return nil
}

func normalizeField(val string, t reflect.Type) json.RawMessage {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return json.RawMessage("null")
	}
	if t != nil && t.Kind() == reflect.String && trimmed != "null" && !strings.HasPrefix(trimmed, `"`) {
		q, _ := json.Marshal(val)
		return q
	}
	if !json.Valid([]byte(trimmed)) {
		q, _ := json.Marshal(val)
		return q
	}
	return json.RawMessage(trimmed)
}
