package config

import "testing"

func TestValidateRejectsNegativeSpaceBetweenTokens(t *testing.T) {
	o := DefaultOutputOptions()
	o.Readability.SpaceBetweenTokens = -1
	if err := o.Validate(); err == nil {
		t.Fatal("expected error for negative space between tokens")
	}
}

func TestValidateAcceptsDisabledGroupingThresholds(t *testing.T) {
	o := DefaultOutputOptions()
	o.Readability.NumberSeparatorsAddThreshold = -1
	o.Readability.ScientificNotationAddingThreshold = -1
	if err := o.Validate(); err != nil {
		t.Fatalf("expected -1 thresholds to be valid, got %v", err)
	}
}

func TestValidateRejectsOutOfRangeThreshold(t *testing.T) {
	o := DefaultOutputOptions()
	o.Readability.NumberSeparatorsAddThreshold = 1
	if err := o.Validate(); err == nil {
		t.Fatal("expected error for threshold below 2")
	}
}

func TestValidateRejectsBadSeparatorInterval(t *testing.T) {
	o := DefaultOutputOptions()
	o.Readability.NumberSeparatorInterval = 0
	if err := o.Validate(); err == nil {
		t.Fatal("expected error for interval below 1")
	}
	o.Readability.NumberSeparatorInterval = 7
	if err := o.Validate(); err == nil {
		t.Fatal("expected error for interval above 6")
	}
}
