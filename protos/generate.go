// Package protos holds the service definitions; generated code lives under gen/.
package protos

//go:generate protoc -I . --go_out=gen --go_opt=paths=source_relative --go-grpc_out=gen --go-grpc_opt=paths=source_relative clinicboard/v1/dashboard.proto
