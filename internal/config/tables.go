// Package config is the immutable, load-once-per-process view onto the
// symbol-alias table, function-alias table and output-formatting options,
// treated as an external data-store collaborator. The core pipeline only
// ever reads a *Tables value passed in explicitly.
package config

// SymbolAlias pairs a canonical symbol with the ordered list of surface
// spellings that the preprocessor rewrites to it. Order matters: at each
// position the longest matching alias across the whole table wins, and
// among equally long matches the one declared first wins.
type SymbolAlias struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases"`
}

// FunctionAlias pairs a canonical function name with its alternate surface
// spellings (including operator-form spellings like "√" for sqrt).
type FunctionAlias struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases"`
}

// Tables is the full immutable configuration surface loaded once per
// process and threaded through every stage that needs it.
type Tables struct {
	Symbols   []SymbolAlias
	Functions []FunctionAlias
	Output    OutputOptions
}

// DefaultSymbolAliases mirrors oloc's data/_data_loader.py symbol_mapping_table:
// canonical key -> ordered alias list, empty-string canonical meaning
// "delete on match" (whitespace collapses away). Every spelling of '='
// maps to '=' so the preprocessor's equals-elimination step can check it.
func DefaultSymbolAliases() []SymbolAlias {
	return []SymbolAlias{
		{"", []string{" ", "\t", "\n"}},
		{"=", []string{"=", "equal", "equals", "eq", "is", "are", "=>", "->"}},
		{"√", []string{"√", "sqrt"}},
		{"°", []string{"°", "deg", "degree"}},
		{"^", []string{"^", "**"}},
		{"+", []string{"+", "plus", "add"}},
		{"-", []string{"-", "minus", "sub"}},
		{"*", []string{"*", "×", "mul", "multiply"}},
		{"/", []string{"/", "÷", "div", "divide"}},
		{"%", []string{"%"}},
		{"!", []string{"!"}},
		{"π", []string{"π", "pi"}},
		{"𝑒", []string{"𝑒", "e"}},
		{"(", []string{"(", "（"}},
		{")", []string{")", "）"}},
		{"[", []string{"["}},
		{"]", []string{"]"}},
		{"{", []string{"{"}},
		{"}", []string{"}"}},
		{"?", []string{"?", "default"}},
		{",", []string{","}},
		{";", []string{";"}},
		{"0", []string{"0", "zero"}},
		{"1", []string{"1", "one"}},
		{"2", []string{"2", "two"}},
		{"3", []string{"3", "three"}},
		{"4", []string{"4", "four"}},
		{"5", []string{"5", "five"}},
		{"6", []string{"6", "six"}},
		{"7", []string{"7", "seven"}},
		{"8", []string{"8", "eight"}},
		{"9", []string{"9", "nine"}},
	}
}

// DefaultFunctionAliases mirrors oloc's function_conversion_table, extended
// with the closed set of transcendentals the kernel's identity tables
// dispatch by canonical name.
func DefaultFunctionAliases() []FunctionAlias {
	return []FunctionAlias{
		{"sqrt", []string{"sqrt", "√"}},
		{"sq", []string{"sq", "square"}},
		{"cub", []string{"cub", "cube"}},
		{"rec", []string{"rec", "reciprocal"}},
		{"pow", []string{"pow", "power"}},
		{"exp", []string{"exp"}},
		{"mod", []string{"mod", "modulo"}},
		{"fact", []string{"fact", "factorial"}},
		{"abs", []string{"abs"}},
		{"sign", []string{"sign"}},
		{"rad", []string{"rad"}},
		{"gcd", []string{"gcd"}},
		{"lcm", []string{"lcm"}},
		{"sin", []string{"sin"}},
		{"cos", []string{"cos"}},
		{"tan", []string{"tan"}},
		{"cot", []string{"cot"}},
		{"asin", []string{"asin", "arcsin"}},
		{"acos", []string{"acos", "arccos"}},
		{"atan", []string{"atan", "arctan"}},
		{"acot", []string{"acot", "arccot"}},
		{"log", []string{"log"}},
		{"ln", []string{"ln"}},
		{"lg", []string{"lg"}},
	}
}

// Default returns the built-in table set, used whenever no external config
// file is supplied; it is what the CLI and pkg/oloc façade load by default.
func Default() Tables {
	return Tables{
		Symbols:   DefaultSymbolAliases(),
		Functions: DefaultFunctionAliases(),
		Output:    DefaultOutputOptions(),
	}
}

// FunctionNames returns every canonical-or-alias spelling recognized as a
// function name, in table order — the set the lexer's function-name scan
// (§4.2 step 3) and is_reserved (§6) both need.
func (t Tables) FunctionNames() []string {
	var names []string
	for _, f := range t.Functions {
		names = append(names, f.Aliases...)
	}
	return names
}

// ReservedKeywords returns every keyword is_reserved checks a candidate
// symbol against: every function name plus every symbol alias. A symbol is
// reserved if any of these appears in it as a substring.
func (t Tables) ReservedKeywords() []string {
	keywords := t.FunctionNames()
	for _, s := range t.Symbols {
		keywords = append(keywords, s.Aliases...)
	}
	return keywords
}
