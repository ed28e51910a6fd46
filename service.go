package colmap

import (
	"context"
	"fmt"
	"time"

	"github.com/milvus-io/milvus-proto/go-api/v2/commonpb"
	"github.com/milvus-io/milvus-proto/go-api/v2/milvuspb"
	"google.golang.org/grpc"
)

// collectionRPC is the slice of the generated Milvus stub the service needs.
type collectionRPC interface {
	CreateCollection(
		ctx context.Context, in *milvuspb.CreateCollectionRequest, opts ...grpc.CallOption,
	) (*commonpb.Status, error)
	DescribeCollection(
		ctx context.Context, in *milvuspb.DescribeCollectionRequest, opts ...grpc.CallOption,
	) (*milvuspb.DescribeCollectionResponse, error)
}

// SchemaService hands finished mappings to the service and reads them back.
// Connection management stays with the caller. Safe for concurrent use.
type SchemaService struct {
	rpc      collectionRPC
	database string
	obs      *observer
}

// NewSchemaService creates a service on top of an established connection.
func NewSchemaService(conn grpc.ClientConnInterface, opts ...Option) (*SchemaService, error) {
	return newSchemaService(milvuspb.NewMilvusServiceClient(conn), opts...)
}

func newSchemaService(rpc collectionRPC, opts ...Option) (*SchemaService, error) {
	cfg := &serviceConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}
	return &SchemaService{rpc: rpc, database: cfg.database, obs: obs}, nil
}

// Create sends the mapping as a CreateCollection request.
// An empty mapping fails with ErrInvalidMapping before any RPC is made.
func (s *SchemaService) Create(
	ctx context.Context, m *CollectionMapping, opts ...RequestOption,
) (err error) {
	start := time.Now()
	defer func() { s.obs.observe(ctx, "collection.create", m.CollectionName(), start, err) }()

	if s.database != "" {
		opts = append([]RequestOption{WithDatabase(s.database)}, opts...)
	}
	req, err := NewCreateRequest(m, opts...)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	status, err := s.rpc.CreateCollection(ctx, req)
	if err != nil {
		return fmt.Errorf("create collection %s: %w", req.GetCollectionName(), err)
	}
	if err := statusError(status); err != nil {
		return fmt.Errorf("create collection %s: %w", req.GetCollectionName(), err)
	}
	return nil
}

// Describe fetches the collection schema and rebuilds its mapping.
func (s *SchemaService) Describe(
	ctx context.Context, collectionName string,
) (_ *CollectionMapping, err error) {
	start := time.Now()
	defer func() { s.obs.observe(ctx, "collection.describe", collectionName, start, err) }()

	resp, err := s.rpc.DescribeCollection(ctx, &milvuspb.DescribeCollectionRequest{
		DbName:         s.database,
		CollectionName: collectionName,
	})
	if err != nil {
		return nil, fmt.Errorf("describe collection %s: %w", collectionName, err)
	}
	m, err := FromDescribeResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("describe collection %s: %w", collectionName, err)
	}
	return m, nil
}
