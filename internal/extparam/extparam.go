// Package extparam handles the key/value extension pairs carried by the
// Milvus schema messages.
//
// The same reserved key is used in two scopes: a field's own TypeParams hold
// the vector dimension payload, the collection's Properties hold the
// free-form collection options. The scopes live in different containers, so
// the shared key string never collides.
package extparam

import (
	"github.com/milvus-io/milvus-proto/go-api/v2/commonpb"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Key is the reserved extra-param key.
const Key = "params"

const dimPath = "dim"

// Pair builds a single extension pair.
func Pair(key, value string) *commonpb.KeyValuePair {
	return &commonpb.KeyValuePair{Key: key, Value: value}
}

// First returns the value of the first pair whose key matches.
// Later duplicates are never seen.
func First(pairs []*commonpb.KeyValuePair, key string) (string, bool) {
	for _, kv := range pairs {
		if kv.GetKey() == key {
			return kv.GetValue(), true
		}
	}
	return "", false
}

// EncodeDim renders the vector dimension payload, e.g. {"dim":128}.
// Any integer is accepted, including zero and negatives.
func EncodeDim(dim int) string {
	out, err := sjson.Set("{}", dimPath, dim)
	if err != nil {
		// sjson only fails on malformed paths; dimPath is constant.
		panic("extparam: encode dim: " + err.Error())
	}
	return out
}

// DecodeDim extracts an integer "dim" property from a JSON object payload.
func DecodeDim(payload string) (int64, bool) {
	if !gjson.Valid(payload) {
		return 0, false
	}
	root := gjson.Parse(payload)
	if !root.IsObject() {
		return 0, false
	}
	v := root.Get(dimPath)
	if v.Type != gjson.Number {
		return 0, false
	}
	if float64(v.Int()) != v.Float() {
		return 0, false
	}
	return v.Int(), true
}
