// Package inferencev1 contains the generated gRPC bindings for the
// inference oracle contract defined in inference.proto.
package inferencev1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative inference.proto
