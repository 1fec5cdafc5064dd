// Package ocr wraps the gRPC connection to the OCR extractor sidecar.
package ocr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleetops/dispatch/pkg/config"
	pb "github.com/fleetops/dispatch/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Extraction is the OCR result handed back to the caller unmodified.
type Extraction struct {
	Text       string  `json:"ocr_text"`
	Confidence float64 `json:"confidence"`
}

// Client talks to the OCR sidecar. The sidecar performs no database
// work; matching extracted text against trips happens in the agent.
type Client struct {
	conn   *grpc.ClientConn
	client pb.OCRServiceClient
	cfg    *config.OCRConfig
}

// NewClient connects to the configured sidecar address.
func NewClient(cfg *config.OCRConfig) (*Client, error) {
	conn, err := grpc.NewClient(cfg.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to OCR service: %w", err)
	}

	slog.Info("OCR client configured", "address", cfg.Address)

	return &Client{
		conn:   conn,
		client: pb.NewOCRServiceClient(conn),
		cfg:    cfg,
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// ExtractText sends image bytes and returns the raw text plus a
// confidence scalar.
func (c *Client) ExtractText(ctx context.Context, image []byte, contentType string) (*Extraction, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	resp, err := c.client.ExtractText(callCtx, &pb.ExtractTextRequest{
		Image:       image,
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("OCR extraction failed: %w", err)
	}

	return &Extraction{
		Text:       resp.Text,
		Confidence: float64(resp.Confidence),
	}, nil
}
