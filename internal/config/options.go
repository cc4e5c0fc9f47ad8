package config

import "fmt"

// FunctionFormatting controls how the output filter renders function calls.
type FunctionFormatting struct {
	// OperatorFormFunctions renders sqrt(x)/pow(x,2)/... back into operator
	// form (√x, x^2) where the grammar permits it.
	OperatorFormFunctions bool `json:"operator_form_functions"`
}

// Readability controls number and exponent formatting.
type Readability struct {
	// SpaceBetweenTokens is the number of spaces rendered between adjacent
	// output tokens. Must be >= 0.
	SpaceBetweenTokens int `json:"space_between_tokens"`
	// NumberSeparatorsAddThreshold is the minimum digit-group count before a
	// grouping separator is inserted; -1 disables grouping. Valid range is
	// -1 or 2..12.
	NumberSeparatorsAddThreshold int `json:"number_separators_add_thresholds"`
	// NumberSeparatorInterval is the digit-group width (e.g. 3 for
	// thousands grouping). Valid range is 1..6.
	NumberSeparatorInterval int `json:"number_separator_interval"`
	// ScientificNotationAddingThreshold is the minimum digit count before a
	// rendered integer switches to scientific notation; -1 disables it.
	// Valid range is -1 or 2..12.
	ScientificNotationAddingThreshold int `json:"scientific_notation_adding_thresholds"`
	// Superscript renders integer exponents with Unicode superscript digits
	// instead of "^".
	Superscript bool `json:"superscript"`
	// CommonlyUsedDecimalConversions renders well-known fractions (1/2,
	// 1/4, ...) back as decimals when that is more readable.
	CommonlyUsedDecimalConversions bool `json:"commonly_used_decimal_conversions"`
}

// Custom controls miscellaneous rendering toggles.
type Custom struct {
	// UnderlineStyleNumberSeparator uses '_' instead of ',' as the digit
	// grouping separator.
	UnderlineStyleNumberSeparator bool `json:"underline_style_number_separator"`
	// RetainIrrationalParam keeps a carrier's '?'-tag in rendered output.
	RetainIrrationalParam bool `json:"retain_irrational_param"`
	// NonASCIICharacterFormNativeIrrational renders native irrationals as
	// 'π'/'𝑒' (true) or their ASCII spellings "pi"/"e" (false).
	NonASCIICharacterFormNativeIrrational bool `json:"non_ascii_character_form_native_irrational"`
}

// OutputOptions is the full configuration surface of the (out-of-scope)
// output filter. The core never reads these values itself; it only
// validates and carries them so a caller's renderer can.
type OutputOptions struct {
	FunctionFormatting FunctionFormatting `json:"function_formatting"`
	Readability        Readability        `json:"readability"`
	Custom             Custom             `json:"custom"`
}

// DefaultOutputOptions mirrors oloc's shipped defaults.
func DefaultOutputOptions() OutputOptions {
	return OutputOptions{
		FunctionFormatting: FunctionFormatting{OperatorFormFunctions: true},
		Readability: Readability{
			SpaceBetweenTokens:                0,
			NumberSeparatorsAddThreshold:       5,
			NumberSeparatorInterval:            3,
			ScientificNotationAddingThreshold: -1,
			Superscript:                        true,
			CommonlyUsedDecimalConversions:     false,
		},
		Custom: Custom{
			UnderlineStyleNumberSeparator:          false,
			RetainIrrationalParam:                  false,
			NonASCIICharacterFormNativeIrrational:  true,
		},
	}
}

// Validate checks every documented constraint, returning the first
// violation found. Initialization fails rather than clamping.
func (o OutputOptions) Validate() error {
	if o.Readability.SpaceBetweenTokens < 0 {
		return fmt.Errorf("config: readability.space between tokens must be >= 0, got %d", o.Readability.SpaceBetweenTokens)
	}
	if t := o.Readability.NumberSeparatorsAddThreshold; !(t == -1 || (t >= 2 && t <= 12)) {
		return fmt.Errorf("config: readability.number separators add thresholds must be -1 or 2..12, got %d", t)
	}
	if iv := o.Readability.NumberSeparatorInterval; iv < 1 || iv > 6 {
		return fmt.Errorf("config: readability.number separator interval must be 1..6, got %d", iv)
	}
	if t := o.Readability.ScientificNotationAddingThreshold; !(t == -1 || (t >= 2 && t <= 12)) {
		return fmt.Errorf("config: readability.scientific notation adding thresholds must be -1 or 2..12, got %d", t)
	}
	return nil
}
