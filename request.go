package colmap

import (
	"fmt"

	"github.com/milvus-io/milvus-proto/go-api/v2/commonpb"
	"github.com/milvus-io/milvus-proto/go-api/v2/milvuspb"
	"github.com/milvus-io/milvus-proto/go-api/v2/schemapb"
	"google.golang.org/protobuf/proto"

	"github.com/kailas-cloud/colmap/internal/domain"
)

// RequestOption configures a CreateCollection request.
type RequestOption func(*milvuspb.CreateCollectionRequest)

// WithShards sets the number of shards. Zero leaves the service default.
func WithShards(n int32) RequestOption {
	return func(r *milvuspb.CreateCollectionRequest) {
		r.ShardsNum = n
	}
}

// WithDatabase targets a database other than the default one.
func WithDatabase(name string) RequestOption {
	return func(r *milvuspb.CreateCollectionRequest) {
		r.DbName = name
	}
}

// NewCreateRequest wraps the mapping's wire message into a CreateCollection
// request. The schema travels as serialized bytes.
func NewCreateRequest(m *CollectionMapping, opts ...RequestOption) (*milvuspb.CreateCollectionRequest, error) {
	schema, err := MarshalSchema(m)
	if err != nil {
		return nil, err
	}
	req := &milvuspb.CreateCollectionRequest{
		CollectionName: m.CollectionName(),
		Schema:         schema,
	}
	for _, o := range opts {
		o(req)
	}
	return req, nil
}

// FromDescribeResponse rebuilds a mapping from a DescribeCollection response.
func FromDescribeResponse(resp *milvuspb.DescribeCollectionResponse) (*CollectionMapping, error) {
	if err := statusError(resp.GetStatus()); err != nil {
		return nil, err
	}
	if resp.GetSchema() == nil {
		return nil, domain.ErrSchemaMissing
	}
	return FromSchema(resp.GetSchema()), nil
}

// MarshalSchema encodes the mapping's wire message in protobuf binary form.
func MarshalSchema(m *CollectionMapping) ([]byte, error) {
	schema, err := m.ToSchema()
	if err != nil {
		return nil, err
	}
	b, err := proto.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return b, nil
}

// UnmarshalSchema decodes a protobuf binary schema into a mapping.
func UnmarshalSchema(b []byte) (*CollectionMapping, error) {
	var schema schemapb.CollectionSchema
	if err := proto.Unmarshal(b, &schema); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	return FromSchema(&schema), nil
}

// statusError maps a non-success status to a *StatusError.
// A nil status counts as success.
func statusError(s *commonpb.Status) error {
	if s == nil {
		return nil
	}
	code := s.GetCode()
	if code == 0 {
		//nolint:staticcheck // older servers only fill the legacy error code
		code = int32(s.GetErrorCode())
	}
	if code == 0 {
		return nil
	}
	return domain.NewStatusError(code, s.GetReason())
}
