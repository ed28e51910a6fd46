package colmap

import (
	"fmt"
	"strings"

	"github.com/milvus-io/milvus-proto/go-api/v2/schemapb"

	"github.com/kailas-cloud/colmap/internal/domain"
)

// DataType is the symbolic type of a collection field.
// Its numeric value is the wire code defined by the Milvus schema proto.
type DataType int32

// Data type constants.
const (
	DataTypeNone              = DataType(schemapb.DataType_None)
	DataTypeBool              = DataType(schemapb.DataType_Bool)
	DataTypeInt8              = DataType(schemapb.DataType_Int8)
	DataTypeInt16             = DataType(schemapb.DataType_Int16)
	DataTypeInt32             = DataType(schemapb.DataType_Int32)
	DataTypeInt64             = DataType(schemapb.DataType_Int64)
	DataTypeFloat             = DataType(schemapb.DataType_Float)
	DataTypeDouble            = DataType(schemapb.DataType_Double)
	DataTypeString            = DataType(schemapb.DataType_String)
	DataTypeVarChar           = DataType(schemapb.DataType_VarChar)
	DataTypeArray             = DataType(schemapb.DataType_Array)
	DataTypeJSON              = DataType(schemapb.DataType_JSON)
	DataTypeBinaryVector      = DataType(schemapb.DataType_BinaryVector)
	DataTypeFloatVector       = DataType(schemapb.DataType_FloatVector)
	DataTypeFloat16Vector     = DataType(schemapb.DataType_Float16Vector)
	DataTypeBFloat16Vector    = DataType(schemapb.DataType_BFloat16Vector)
	DataTypeSparseFloatVector = DataType(schemapb.DataType_SparseFloatVector)
)

type dataTypeInfo struct {
	name   string
	vector bool
}

var dataTypes = map[DataType]dataTypeInfo{
	DataTypeNone:              {name: "NONE"},
	DataTypeBool:              {name: "BOOL"},
	DataTypeInt8:              {name: "INT8"},
	DataTypeInt16:             {name: "INT16"},
	DataTypeInt32:             {name: "INT32"},
	DataTypeInt64:             {name: "INT64"},
	DataTypeFloat:             {name: "FLOAT"},
	DataTypeDouble:            {name: "DOUBLE"},
	DataTypeString:            {name: "STRING"},
	DataTypeVarChar:           {name: "VARCHAR"},
	DataTypeArray:             {name: "ARRAY"},
	DataTypeJSON:              {name: "JSON"},
	DataTypeBinaryVector:      {name: "BINARY_VECTOR", vector: true},
	DataTypeFloatVector:       {name: "FLOAT_VECTOR", vector: true},
	DataTypeFloat16Vector:     {name: "FLOAT16_VECTOR", vector: true},
	DataTypeBFloat16Vector:    {name: "BFLOAT16_VECTOR", vector: true},
	DataTypeSparseFloatVector: {name: "SPARSE_FLOAT_VECTOR", vector: true},
}

// byNormalizedName maps lowercase names without underscores to types,
// so "FLOAT_VECTOR", "FloatVector" and "float_vector" all resolve.
var byNormalizedName = func() map[string]DataType {
	m := make(map[string]DataType, len(dataTypes))
	for dt, info := range dataTypes {
		m[normalizeName(info.name)] = dt
	}
	return m
}()

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
}

// DataTypeOf resolves a wire code. Codes outside the catalog pass through
// unchanged and report IsKnown() == false.
func DataTypeOf(code int32) DataType { return DataType(code) }

// ParseDataType resolves a symbolic name.
func ParseDataType(name string) (DataType, error) {
	if dt, ok := byNormalizedName[normalizeName(name)]; ok {
		return dt, nil
	}
	return DataTypeNone, fmt.Errorf("%w: %q", domain.ErrUnknownDataType, name)
}

// Code returns the wire code.
func (d DataType) Code() int32 { return int32(d) }

// IsKnown reports whether the code belongs to the catalog.
func (d DataType) IsKnown() bool {
	_, ok := dataTypes[d]
	return ok
}

// IsVector reports whether the type holds fixed-dimension vectors.
func (d DataType) IsVector() bool { return dataTypes[d].vector }

func (d DataType) String() string {
	if info, ok := dataTypes[d]; ok {
		return info.name
	}
	return fmt.Sprintf("DataType(%d)", int32(d))
}

func (d DataType) proto() schemapb.DataType { return schemapb.DataType(d) }
