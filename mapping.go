package colmap

import (
	"fmt"
	"strings"

	"github.com/milvus-io/milvus-proto/go-api/v2/commonpb"
	"github.com/milvus-io/milvus-proto/go-api/v2/schemapb"
	"google.golang.org/protobuf/proto"

	"github.com/kailas-cloud/colmap/internal/domain"
	"github.com/kailas-cloud/colmap/internal/extparam"
)

// ExtraParamKey is the reserved key shared by the field-level dimension
// payload and the collection-level params payload. Same wire key, different
// container scope: a field's TypeParams vs the schema's Properties.
const ExtraParamKey = extparam.Key

// CollectionMapping describes a collection schema before it is sent to the
// service. It is a mutable builder owned by one caller at a time; the
// message returned by ToSchema is an independent copy.
type CollectionMapping struct {
	schema *schemapb.CollectionSchema
}

// Create starts an empty mapping for the named collection.
// The name is not validated; the service rejects bad names.
func Create(collectionName string) *CollectionMapping {
	return &CollectionMapping{
		schema: &schemapb.CollectionSchema{Name: collectionName},
	}
}

// FromSchema rebuilds a mapping from a wire message, e.g. one returned by
// DescribeCollection. The message is copied, never aliased.
func FromSchema(s *schemapb.CollectionSchema) *CollectionMapping {
	if s == nil {
		return &CollectionMapping{schema: &schemapb.CollectionSchema{}}
	}
	cp, _ := proto.Clone(s).(*schemapb.CollectionSchema)
	return &CollectionMapping{schema: cp}
}

// AddField appends a scalar field.
func (m *CollectionMapping) AddField(name string, dt DataType) *CollectionMapping {
	m.schema.Fields = append(m.schema.Fields, &schemapb.FieldSchema{
		Name:     name,
		DataType: dt.proto(),
	})
	return m
}

// AddVectorField appends a field whose params carry {"dim": dimension}.
// The dimension is passed through as is.
func (m *CollectionMapping) AddVectorField(name string, dt DataType, dimension int) *CollectionMapping {
	m.schema.Fields = append(m.schema.Fields, &schemapb.FieldSchema{
		Name:       name,
		DataType:   dt.proto(),
		TypeParams: []*commonpb.KeyValuePair{extparam.Pair(ExtraParamKey, extparam.EncodeDim(dimension))},
	})
	return m
}

// SetParamsInJSON appends a collection-level params payload, typically
// carrying "segment_row_limit" and "auto_id". Earlier payloads are kept and
// win on read.
func (m *CollectionMapping) SetParamsInJSON(paramsInJSON string) *CollectionMapping {
	m.schema.Properties = append(m.schema.Properties, extparam.Pair(ExtraParamKey, paramsInJSON))
	return m
}

// ParamsInJSON returns the first collection-level params payload.
func (m *CollectionMapping) ParamsInJSON() (string, bool) {
	return extparam.First(m.schema.GetProperties(), ExtraParamKey)
}

// CollectionName returns the name given at construction.
func (m *CollectionMapping) CollectionName() string { return m.schema.GetName() }

// Fields projects the field descriptors in insertion order.
// Each call allocates a fresh slice.
func (m *CollectionMapping) Fields() []FieldInfo {
	fields := m.schema.GetFields()
	out := make([]FieldInfo, 0, len(fields))
	for _, f := range fields {
		info := FieldInfo{
			Name: f.GetName(),
			Type: DataTypeOf(int32(f.GetDataType())),
		}
		info.Params, info.HasParams = extparam.First(f.GetTypeParams(), ExtraParamKey)
		out = append(out, info)
	}
	return out
}

// ToSchema produces the wire message. A mapping without fields is rejected
// here rather than on every mutation, so it may be built incrementally.
func (m *CollectionMapping) ToSchema() (*schemapb.CollectionSchema, error) {
	if len(m.schema.GetFields()) == 0 {
		return nil, fmt.Errorf("%w: fields must not be empty", domain.ErrInvalidMapping)
	}
	cp, _ := proto.Clone(m.schema).(*schemapb.CollectionSchema)
	return cp, nil
}

func (m *CollectionMapping) String() string {
	fields := m.Fields()
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	params, ok := m.ParamsInJSON()
	if !ok {
		params = "null"
	}
	return fmt.Sprintf("CollectionMapping = {collectionName = %s, fields = [%s], params = %s}",
		m.CollectionName(), strings.Join(parts, ", "), params)
}

// FieldInfo is a read-only projection of one field descriptor.
type FieldInfo struct {
	Name string
	Type DataType
	// Params is the first value under ExtraParamKey in the field's own
	// params; valid only when HasParams is set.
	Params    string
	HasParams bool
}

// Dim decodes the vector dimension from Params.
func (f FieldInfo) Dim() (int64, bool) {
	if !f.HasParams {
		return 0, false
	}
	return extparam.DecodeDim(f.Params)
}

// IsVector reports whether the field carries a dimension payload.
func (f FieldInfo) IsVector() bool {
	_, ok := f.Dim()
	return ok
}

// AsMap returns the keyed projection: "name", "type" and, when present,
// ExtraParamKey.
func (f FieldInfo) AsMap() map[string]any {
	m := map[string]any{
		"name": f.Name,
		"type": f.Type,
	}
	if f.HasParams {
		m[ExtraParamKey] = f.Params
	}
	return m
}

func (f FieldInfo) String() string {
	if f.HasParams {
		return fmt.Sprintf("{name=%s, type=%s, %s=%s}", f.Name, f.Type, ExtraParamKey, f.Params)
	}
	return fmt.Sprintf("{name=%s, type=%s}", f.Name, f.Type)
}
