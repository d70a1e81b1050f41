// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a runnable transport (HTTP API, worker push endpoint). Servers
// are collected in the "deliveries" fx group and started together.
type Delivery interface {
	Serve(ctx context.Context) error
}
