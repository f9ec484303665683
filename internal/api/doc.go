// Package api provides the HTTP client for the identity directory and the
// relay endpoints. It handles request/response serialization and error
// mapping; higher-level workflow logic lives in the root cryptoform package.
package api
