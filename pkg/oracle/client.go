// Package oracle is the inference client used by the summariser and the
// priority scorer: a thin gRPC transport plus a caching, pause-aware
// invoker that logs every call.
package oracle

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	inferencev1 "github.com/headspace-sh/headspace/proto"
)

// Result is one completed inference.
type Result struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	CostUSD          float64
}

// Provider issues one inference. The gRPC client implements it; tests
// substitute fakes.
type Provider interface {
	Infer(ctx context.Context, prompt string) (Result, error)
	Close() error
}

// Client calls the inference service over gRPC.
type Client struct {
	conn      *grpc.ClientConn
	client    inferencev1.InferenceServiceClient
	model     string
	maxTokens int32
}

// NewClient dials the inference service. The connection is lazy; dial
// errors surface on the first Infer.
func NewClient(addr, model string, maxTokens int) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to inference service at %s: %w", addr, err)
	}
	return &Client{
		conn:      conn,
		client:    inferencev1.NewInferenceServiceClient(conn),
		model:     model,
		maxTokens: int32(maxTokens),
	}, nil
}

// Infer issues one unary inference call.
func (c *Client) Infer(ctx context.Context, prompt string) (Result, error) {
	resp, err := c.client.Infer(ctx, &inferencev1.InferRequest{
		Prompt:    prompt,
		Model:     c.model,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return Result{}, fmt.Errorf("inference call failed: %w", err)
	}
	return Result{
		Text:             resp.Text,
		PromptTokens:     int(resp.PromptTokens),
		CompletionTokens: int(resp.CompletionTokens),
		CostUSD:          resp.CostUsd,
	}, nil
}

// Close releases the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
