package serde

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// benchmarkValues returns a set of payloads for targeted benchmarking
func benchmarkValues() map[string]any {
	largeList := make([]any, 1024)
	for i := range largeList {
		largeList[i] = i
	}

	price, _ := decimal.NewFromString("1999.99")

	return map[string]any{
		"Scalar": "just a string",
		"FlatMapping": map[string]any{
			"nome": "Maria", "idade": 25, "ativo": true,
		},
		"NestedMapping": map[string]any{
			"user": map[string]any{
				"name":    "Carlos",
				"address": map[string]any{"city": "São Paulo", "zip": "01000-000"},
			},
			"scores": []any{1, 2, 3, 4, 5},
		},
		"LargeList": largeList,
		"Tagged": map[string]any{
			"when":   time.Date(2023, 12, 25, 10, 30, 0, 0, time.UTC),
			"amount": price,
			"tags":   NewSet("a", "b", "c"),
			"person": Pessoa{Nome: "Ana", Idade: 28},
		},
	}
}

// BenchmarkSerialize benchmarks serialization for compact and indented output
func BenchmarkSerialize(b *testing.B) {
	serializers := map[string]*JSONSerializer{
		"Compact":  NewJSONSerializer(Compact, false),
		"Indented": NewJSONSerializer(2, false),
	}

	for name, s := range serializers {
		for valueName, value := range benchmarkValues() {
			b.Run(name+"_"+valueName, func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, err := s.Serialize(value)
					if err != nil {
						b.Fatalf("Failed to serialize: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkDeserialize benchmarks decoding of pre-rendered documents
func BenchmarkDeserialize(b *testing.B) {
	s := NewJSONSerializer(Compact, false)

	for valueName, value := range benchmarkValues() {
		text, err := s.Serialize(value)
		if err != nil {
			b.Fatalf("Failed to prepare payload: %v", err)
		}
		b.Run(valueName, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := s.Deserialize(text); err != nil {
					b.Fatalf("Failed to deserialize: %v", err)
				}
			}
		})
	}
}

// BenchmarkToPlain benchmarks the standalone converter
func BenchmarkToPlain(b *testing.B) {
	for valueName, value := range benchmarkValues() {
		b.Run(valueName, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := ToPlain(value); err != nil {
					b.Fatalf("Failed to convert: %v", err)
				}
			}
		})
	}
}
