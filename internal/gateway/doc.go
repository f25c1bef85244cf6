// Package gateway implements the caching gateway of the field client.
//
// A [Gateway] is an [net/http.RoundTripper] that sits between the client and
// the network. It keeps the application shell and previously seen API
// responses in versioned cache partitions so that the client keeps working
// while the backend is unreachable. The same gateway backs the local proxy
// built by [NewProxy], which serves the PWA shell.
//
// Lifecycle follows install → waiting → activated. Only an activated gateway
// intercepts requests; before that every request goes to the network as is.
package gateway
