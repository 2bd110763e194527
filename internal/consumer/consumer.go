// Package consumer contains interface of the change-stream consumer.
package consumer

import (
	"context"

	"github.com/mosaicnet/mosaic/internal/health"
)

//go:generate mockgen -destination=./mock/consumer.go -package=mock -source=consumer.go

// Consumer consumes authoritative document changes from the store.
type Consumer interface {
	health.Pinger

	Run(ctx context.Context) error
}
