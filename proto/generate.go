// Package proto carries the gRPC contract for the OCR extractor sidecar.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative ocr.proto
