package oloc_test

import (
	"testing"

	"github.com/oloc-go/oloc/pkg/oloc"
)

func TestResultToStringMatchesFinal(t *testing.T) {
	res, err := oloc.Calculate("2^3^2", -1)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.ToString() != res.Final {
		t.Errorf("ToString() = %q, Final = %q", res.ToString(), res.Final)
	}
	if res.Final != "512" {
		t.Errorf("Final = %q, want %q", res.Final, "512")
	}
}

func TestResultRationalRoundTripsThroughRational(t *testing.T) {
	res, err := oloc.Calculate("7/2", -1)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	rat, ok := res.ToRational()
	if !ok {
		t.Fatal("expected an exact rational value for 7/2")
	}
	if rat.Num.Int64() != 7 || rat.Den.Int64() != 2 {
		t.Errorf("rational = %s/%s, want 7/2", rat.Num, rat.Den)
	}
}

func TestSymbolicResultMarshalBinaryRoundTrips(t *testing.T) {
	res, err := oloc.Calculate("sin(1)", -1)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	data, err := res.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var decoded oloc.Result
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !decoded.Symbolic {
		t.Error("expected the round-tripped result to stay symbolic")
	}
	if decoded.Numerator != "" || decoded.Denominator != "" {
		t.Errorf("expected no numerator/denominator on a symbolic result, got %q/%q", decoded.Numerator, decoded.Denominator)
	}
}
