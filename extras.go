// Package extras bundles small base-class-library extensions that are
// too little to live alone: a base16 (hex) codec, an order-preserving
// URL query collection, semantic version glue, calendar helpers, and
// generic slice utilities.
//
// # Packages
//
// Each concern lives in its own subpackage:
//
//   - base16 - RFC 4648 §8 hexadecimal encoding and decoding
//   - urlq - order-preserving URL query collections with struct binding
//   - semver - semantic version parsing and comparison
//   - timex - calendar and day/month boundary helpers
//   - xslice - generic slice utilities (empty singletons, nil guards)
//   - digest - deterministic hex-rendered digests (SHA-2, BLAKE2b)
//
// # Codec Seam
//
// The root package defines the Codec interface that format packages
// implement. base16.Codec satisfies it with content type
// "application/base16":
//
//	var c extras.Codec = base16.Codec{}
//	data, _ := c.Marshal([]byte{0xde, 0xad})
//	// data == []byte("dead")
//
// Marshal and Unmarshal failures wrap the ErrMarshal and ErrUnmarshal
// sentinels; use errors.Is to classify them.
package extras

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/base16").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
