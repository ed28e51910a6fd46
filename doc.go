// Package colmap describes Milvus collection schemas on the client side.
//
// A CollectionMapping accumulates fields in order, stores vector dimensions
// as {"dim": N} under the reserved "params" key of each field, and keeps
// collection-level options as a free-form JSON payload under the same key in
// the schema properties. ToSchema hands out the wire message.
//
//	m := colmap.Create("docs").
//	    AddField("id", colmap.DataTypeInt64).
//	    AddVectorField("embedding", colmap.DataTypeFloatVector, 128).
//	    SetParamsInJSON(`{"segment_row_limit":50000}`)
//
//	schema, err := m.ToSchema() // fails with ErrInvalidMapping without fields
//
// Struct tags can drive the same builder:
//
//	type Doc struct {
//	    ID        int64     `colmap:"id"`
//	    Embedding []float32 `colmap:"embedding,dim=128"`
//	}
//	m, err := colmap.MappingFor[Doc]("docs")
//
// SchemaService sends a finished mapping through the generated Milvus gRPC
// stub and rebuilds mappings from DescribeCollection responses.
//
// A CollectionMapping is not safe for concurrent mutation. Messages returned
// by ToSchema are independent copies and may be shared freely.
package colmap
