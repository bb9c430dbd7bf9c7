// Package serde provides object-to-text serialization for the API service.
// It defines a common interface for serializers and implements a JSON serializer
// plus a recursive plain-structure converter that share a type-tagging convention
// for values JSON cannot express natively.
//
// The package focuses on:
//   - Converting arbitrary value trees into the plain JSON value model
//     (null, bool, number, string, sequence, string-keyed mapping)
//   - Tagging non-native values (date-times, arbitrary-precision decimals, sets
//     and record structs) with an explicit {"__type__": ...} wrapper so they stay
//     representable in plain JSON text
//   - Producing compact or indented text, optionally restricted to ASCII
//
// Key Components:
//
//   - ISerializer: Core interface that all serializer implementations must satisfy.
//
//   - JSONSerializer: Text codec backed by encoding/json. Serialize runs the
//     converter first, so every tagged form lands in the output text. Deserialize
//     is strictly the structural inverse of plain JSON: tagged wrapper objects are
//     NOT re-inflated into their original types. The round trip for tagged values
//     is lossy on purpose.
//
//   - ToPlain: Standalone recursive converter, exposed for callers that want the
//     plain tree without rendering it to text.
//
//   - Set: Unordered collection of unique members, encoded through the "set" tag.
//
// Thread Safety:
//
//	All serializer implementations are stateless after construction and safe for
//	concurrent use across multiple goroutines without additional synchronization.
//
// Usage:
//
//	Serializers are typically created once and reused throughout the application:
//
//	  s := serde.NewJSONSerializer(2, false)
//	  text, err := s.Serialize(map[string]any{"when": time.Now()})
//	  // ... store or send text ...
//	  value, err := s.Deserialize(text)
package serde
