package serde

// ISerializer is the interface for all text serializers
type ISerializer interface {
	// Serialize serializes a value into its text form
	// It returns the serialized text and an error if any
	Serialize(v any) (string, error)
	// Deserialize parses text into the plain value model
	// (mappings, sequences, string/number/bool/null)
	// It returns the decoded value and an error if any
	Deserialize(data string) (any, error)
}
