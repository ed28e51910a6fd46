package colmap

import (
	"errors"
	"testing"

	"github.com/milvus-io/milvus-proto/go-api/v2/schemapb"
)

func TestDataType_CodesMatchWire(t *testing.T) {
	for dt := range dataTypes {
		if _, ok := schemapb.DataType_name[dt.Code()]; !ok {
			t.Errorf("%s has no wire name", dt)
		}
		if DataTypeOf(dt.Code()) != dt {
			t.Errorf("DataTypeOf(%d) != %s", dt.Code(), dt)
		}
	}
	if DataTypeInt64.Code() != 5 || DataTypeFloatVector.Code() != 101 {
		t.Errorf("unexpected codes: INT64=%d FLOAT_VECTOR=%d", DataTypeInt64.Code(), DataTypeFloatVector.Code())
	}
}

func TestDataType_UnknownCodePassesThrough(t *testing.T) {
	dt := DataTypeOf(9999)
	if dt.IsKnown() {
		t.Error("code 9999 should be unknown")
	}
	if dt.Code() != 9999 {
		t.Errorf("Code() = %d, want 9999", dt.Code())
	}
	if dt.String() != "DataType(9999)" {
		t.Errorf("String() = %q", dt.String())
	}
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		in   string
		want DataType
	}{
		{"INT64", DataTypeInt64},
		{"Int64", DataTypeInt64},
		{" int64 ", DataTypeInt64},
		{"FLOAT_VECTOR", DataTypeFloatVector},
		{"FloatVector", DataTypeFloatVector},
		{"binary_vector", DataTypeBinaryVector},
		{"VarChar", DataTypeVarChar},
		{"json", DataTypeJSON},
	}
	for _, tt := range tests {
		got, err := ParseDataType(tt.in)
		if err != nil {
			t.Errorf("ParseDataType(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDataType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseDataType_Unknown(t *testing.T) {
	_, err := ParseDataType("QUATERNION")
	if !errors.Is(err, ErrUnknownDataType) {
		t.Fatalf("error = %v, want ErrUnknownDataType", err)
	}
}

func TestDataType_IsVector(t *testing.T) {
	vectors := []DataType{
		DataTypeBinaryVector, DataTypeFloatVector, DataTypeFloat16Vector,
		DataTypeBFloat16Vector, DataTypeSparseFloatVector,
	}
	for _, dt := range vectors {
		if !dt.IsVector() {
			t.Errorf("%s should be a vector type", dt)
		}
	}
	for _, dt := range []DataType{DataTypeBool, DataTypeInt64, DataTypeVarChar, DataTypeOf(777)} {
		if dt.IsVector() {
			t.Errorf("%s should not be a vector type", dt)
		}
	}
}
