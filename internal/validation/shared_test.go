package validation

import "testing"

func TestError_DeterministicMessage(t *testing.T) {
	err := &Error{Fields: map[string]string{
		"symbol":   "symbol is required",
		"price":    "price must be positive",
		"quantity": "quantity must be positive",
	}}

	want := "price: price must be positive; quantity: quantity must be positive; symbol: symbol is required"
	for i := 0; i < 5; i++ {
		if got := err.Error(); got != want {
			t.Fatalf("Expected %q, got %q", want, got)
		}
	}
}
