package extparam

import (
	"testing"

	"github.com/milvus-io/milvus-proto/go-api/v2/commonpb"
)

func TestEncodeDim(t *testing.T) {
	tests := []struct {
		dim  int
		want string
	}{
		{128, `{"dim":128}`},
		{0, `{"dim":0}`},
		{-5, `{"dim":-5}`},
		{1 << 20, `{"dim":1048576}`},
	}
	for _, tt := range tests {
		if got := EncodeDim(tt.dim); got != tt.want {
			t.Errorf("EncodeDim(%d) = %q, want %q", tt.dim, got, tt.want)
		}
	}
}

func TestDecodeDim(t *testing.T) {
	tests := []struct {
		payload string
		want    int64
		ok      bool
	}{
		{`{"dim":128}`, 128, true},
		{`{"dim": -3}`, -3, true},
		{`{"dim":0,"other":1}`, 0, true},
		{`{"dim":1.5}`, 0, false},
		{`{"dim":"128"}`, 0, false},
		{`{"segment_row_limit":50000}`, 0, false},
		{`[1,2]`, 0, false},
		{`not json`, 0, false},
		{``, 0, false},
	}
	for _, tt := range tests {
		got, ok := DecodeDim(tt.payload)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DecodeDim(%q) = (%d, %v), want (%d, %v)", tt.payload, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDecodeDim_RoundTrip(t *testing.T) {
	for _, dim := range []int{-1024, -1, 0, 1, 2, 768, 32768} {
		got, ok := DecodeDim(EncodeDim(dim))
		if !ok || got != int64(dim) {
			t.Errorf("round trip %d = (%d, %v)", dim, got, ok)
		}
	}
}

func TestFirst(t *testing.T) {
	pairs := []*commonpb.KeyValuePair{
		Pair("other", "x"),
		Pair(Key, "first"),
		Pair(Key, "second"),
	}

	v, ok := First(pairs, Key)
	if !ok || v != "first" {
		t.Errorf("First = (%q, %v), want (\"first\", true)", v, ok)
	}

	if _, ok := First(pairs, "missing"); ok {
		t.Error("expected missing key to report false")
	}
	if _, ok := First(nil, Key); ok {
		t.Error("expected nil pairs to report false")
	}
}

func TestFirst_EmptyValueIsPresent(t *testing.T) {
	v, ok := First([]*commonpb.KeyValuePair{Pair(Key, "")}, Key)
	if !ok || v != "" {
		t.Errorf("First = (%q, %v), want (\"\", true)", v, ok)
	}
}
