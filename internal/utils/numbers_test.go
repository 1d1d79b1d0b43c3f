package utils

import (
	"math"
	"testing"
)

func TestAsNumber(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{name: "float64", in: 25.5, want: 25.5, wantOK: true},
		{name: "negative", in: -2.0, want: -2, wantOK: true},
		{name: "zero", in: 0.0, want: 0, wantOK: true},
		{name: "numeric string", in: "25", wantOK: false},
		{name: "nil", in: nil, wantOK: false},
		{name: "bool", in: true, wantOK: false},
		{name: "object", in: map[string]any{}, wantOK: false},
		{name: "NaN", in: math.NaN(), wantOK: false},
		{name: "Inf", in: math.Inf(1), wantOK: false},
		{name: "negative Inf", in: math.Inf(-1), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsNumber(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("AsNumber(%v) ok = %v; want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("AsNumber(%v) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStoredNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    *float64
		wantErr bool
	}{
		{name: "null stays null", in: nil, want: nil},
		{name: "real", in: 5.5, want: ptr(5.5)},
		{name: "integer", in: int64(20), want: ptr(20)},
		{name: "numeric text", in: "25.5", want: ptr(25.5)},
		{name: "numeric text with spaces", in: " -2 ", want: ptr(-2)},
		{name: "numeric bytes", in: []byte("18"), want: ptr(18)},
		{name: "non numeric text", in: "hot", wantErr: true},
		{name: "NaN text", in: "NaN", wantErr: true},
		{name: "Inf text", in: "Inf", wantErr: true},
		{name: "Inf real", in: math.Inf(1), wantErr: true},
		{name: "negative Inf real", in: math.Inf(-1), wantErr: true},
		{name: "NaN real", in: math.NaN(), wantErr: true},
		{name: "unsupported type", in: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StoredNumber(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("StoredNumber(%v) err = nil; want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("StoredNumber(%v) err = %v", tt.in, err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("StoredNumber(%v) = %v; want %v", tt.in, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("StoredNumber(%v) = %v; want %v", tt.in, *got, *tt.want)
			}
		})
	}
}

func ptr(f float64) *float64 { return &f }
