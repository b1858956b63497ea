// Package kernel contains shared domain primitives used across aggregates.
// It currently provides the UUID value object that identifies orders.
package kernel
