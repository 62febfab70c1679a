// Package domain contains the core domain entities shared across the bridge:
// queue messages and the deliveries recorded once a message has been
// published. They are intentionally free of infrastructure concerns.
package domain
