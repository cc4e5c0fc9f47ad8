package calcerr

// The closed set of error kinds, grouped by family. Message templates and
// hints are carried over in meaning from oloc_exceptions.py.
const (
	// Syntax family.
	COMMENT_MISMATCH                   Kind = "COMMENT_MISMATCH"
	LEFT_BRACKET_MISMATCH               Kind = "LEFT_BRACKET_MISMATCH"
	RIGHT_BRACKET_MISMATCH              Kind = "RIGHT_BRACKET_MISMATCH"
	BRACKET_HIERARCHY_ERROR             Kind = "BRACKET_HIERARCHY_ERROR"
	UNEXPECTED_BRACKET                  Kind = "UNEXPECTED_BRACKET"
	IRRATIONAL_BRACKET_MISMATCH         Kind = "IRRATIONAL_BRACKET_MISMATCH"
	IRRATIONAL_PARAM_ERROR              Kind = "IRRATIONAL_PARAM_ERROR"
	NUMERIC_SEPARATOR_ERROR             Kind = "NUMERIC_SEPARATOR_ERROR"
	FUNCTION_MISPLACEMENT               Kind = "FUNCTION_MISPLACEMENT"
	FUNCTION_SEPARATOR_OUTSIDE          Kind = "FUNCTION_SEPARATOR_OUTSIDE"
	FUNCTION_PARAM_SEPARATOR_ERROR      Kind = "FUNCTION_PARAM_SEPARATOR_ERROR"
	FUNCTION_PARAM_COUNT_ERROR          Kind = "FUNCTION_PARAM_COUNT_ERROR"
	PREFIX_OPERATOR_MISPLACEMENT        Kind = "PREFIX_OPERATOR_MISPLACEMENT"
	POSTFIX_OPERATOR_MISPLACEMENT       Kind = "POSTFIX_OPERATOR_MISPLACEMENT"
	BINARY_OPERATOR_MISPLACEMENT        Kind = "BINARY_OPERATOR_MISPLACEMENT"
	ENCLOSING_OPERATOR_MISPLACEMENT     Kind = "ENCLOSING_OPERATOR_MISPLACEMENT"
	EQUAL_SIGN_MISPLACEMENT             Kind = "EQUAL_SIGN_MISPLACEMENT"
	GROUP_EXPRESSION_ERROR              Kind = "GROUP_EXPRESSION_ERROR"
	BINARY_EXPRESSION_ERROR             Kind = "BINARY_EXPRESSION_ERROR"
	UNARY_EXPRESSION_ERROR              Kind = "UNARY_EXPRESSION_ERROR"
	RESERVED_WORD_CONFLICT              Kind = "RESERVED_WORD_CONFLICT"
	ABSOLUTE_SYMBOL_MISMATCH            Kind = "ABSOLUTE_SYMBOL_MISMATCH"
	DOT_SYNTAX_ERROR                    Kind = "DOT_SYNTAX_ERROR"
	COLON_SYNTAX_ERROR                  Kind = "COLON_SYNTAX_ERROR"
	UNEXPECTED_TOKEN                    Kind = "UNEXPECTED_TOKEN"
	UNEXPECTED_END_OF_EXPRESSION        Kind = "UNEXPECTED_END_OF_EXPRESSION"

	// Value family.
	INVALID_INTEGER                  Kind = "INVALID_INTEGER"
	INVALID_FINITE_DECIMAL           Kind = "INVALID_FINITE_DECIMAL"
	INVALID_INFINITE_DECIMAL         Kind = "INVALID_INFINITE_DECIMAL"
	INVALID_PERCENTAGE                Kind = "INVALID_PERCENTAGE"
	INVALID_NATIVE_IRRATIONAL         Kind = "INVALID_NATIVE_IRRATIONAL"
	INVALID_SHORT_CUSTOM_IRRATIONAL   Kind = "INVALID_SHORT_CUSTOM_IRRATIONAL"
	INVALID_LONG_CUSTOM_IRRATIONAL    Kind = "INVALID_LONG_CUSTOM_IRRATIONAL"
	INVALID_OPERATOR                  Kind = "INVALID_OPERATOR"
	INVALID_BRACKET                   Kind = "INVALID_BRACKET"
	INVALID_FUNCTION                  Kind = "INVALID_FUNCTION"
	INVALID_PARAM_SEPARATOR           Kind = "INVALID_PARAM_SEPARATOR"
	INVALID_IRRATIONAL_PARAM          Kind = "INVALID_IRRATIONAL_PARAM"
	UNKNOWN_TOKEN                     Kind = "UNKNOWN_TOKEN"
	NOT_IN_DOMAIN                     Kind = "NOT_IN_DOMAIN"

	// Calculation family.
	DIVIDE_BY_ZERO             Kind = "DIVIDE_BY_ZERO"
	ZERO_TO_THE_POWER_OF_ZERO  Kind = "ZERO_TO_THE_POWER_OF_ZERO"
	DOMAIN_ERROR               Kind = "DOMAIN_ERROR"
	UNSUPPORTED_OPERATOR       Kind = "UNSUPPORTED_OPERATOR"
	UNSUPPORTED_FUNCTION       Kind = "UNSUPPORTED_FUNCTION"

	// Conversion family.
	MISSING_PARAM Kind = "MISSING_PARAM"
	NATIVE_PARAM  Kind = "NATIVE_PARAM"

	// Timeout family.
	TIMEOUT Kind = "TIMEOUT"
)

var registry = map[Kind]template{
	COMMENT_MISMATCH: {Syntax,
		"Mismatch '#' detected",
		"The content of free comments should be wrapped in a before and after '#'."},
	LEFT_BRACKET_MISMATCH: {Syntax,
		"Mismatch `{primary_info}` detected",
		"The left bracket must be matched by an identical right bracket. Check your expression."},
	RIGHT_BRACKET_MISMATCH: {Syntax,
		"Mismatch `{primary_info}` detected",
		"The right bracket must be matched by an identical left bracket. Check your expression."},
	BRACKET_HIERARCHY_ERROR: {Syntax,
		"Bracket `{primary_info}` hierarchy error",
		"Parentheses must follow the hierarchy `{}` `[]` `()` in descending order."},
	UNEXPECTED_BRACKET: {Syntax,
		"Bracket that should not be present during static checking `{primary_info}`",
		"Bracket normalization should have eliminated every non-round bracket before this point."},
	IRRATIONAL_BRACKET_MISMATCH: {Syntax,
		"Mismatch `{primary_info}` detected",
		"When declaring a custom long irrational number, '<' must match '>'. Check your expression."},
	IRRATIONAL_PARAM_ERROR: {Syntax,
		"Irrational parameter `{primary_info}` failed static checking",
		"An irrational parameter may only follow an irrational number or an expression that may be irrational."},
	NUMERIC_SEPARATOR_ERROR: {Syntax,
		"Invalid numeric separator detected",
		"Commas in numbers cannot be at the start/end or consecutive. Use ';' for function argument separation."},
	FUNCTION_MISPLACEMENT: {Syntax,
		"Function `{primary_info}` not followed by '('",
		"A function name must always be followed by an opening parenthesis."},
	FUNCTION_SEPARATOR_OUTSIDE: {Syntax,
		"Parameter separator `{primary_info}` outside any function call",
		"';' may only appear between a function's arguments."},
	FUNCTION_PARAM_SEPARATOR_ERROR: {Syntax,
		"Misplaced parameter separator `{primary_info}`",
		"Parameter separators must lie between two operands inside a function's argument list."},
	FUNCTION_PARAM_COUNT_ERROR: {Syntax,
		"Function `{primary_info}` called with the wrong number of arguments",
		"Check the function's declared arity and the number of comma-separated arguments supplied."},
	PREFIX_OPERATOR_MISPLACEMENT: {Syntax,
		"Prefix operator `{primary_info}` misplaced",
		"A prefix operator must be followed by an operand."},
	POSTFIX_OPERATOR_MISPLACEMENT: {Syntax,
		"Postfix operator `{primary_info}` misplaced",
		"A postfix operator must follow a complete operand."},
	BINARY_OPERATOR_MISPLACEMENT: {Syntax,
		"Binary operator `{primary_info}` misplaced",
		"A binary operator must have an operand on both sides."},
	ENCLOSING_OPERATOR_MISPLACEMENT: {Syntax,
		"Enclosing operator `{primary_info}` misplaced",
		"Absolute-value bars must wrap a complete expression on both sides."},
	EQUAL_SIGN_MISPLACEMENT: {Syntax,
		"Misplaced '=' detected",
		"Only a single trailing '=' is permitted, mirroring how a calculator echoes its input."},
	GROUP_EXPRESSION_ERROR: {Syntax,
		"Malformed grouped expression",
		"A parenthesized group must wrap exactly one expression."},
	BINARY_EXPRESSION_ERROR: {Syntax,
		"Malformed binary expression `{primary_info}`",
		"A binary expression must have exactly two operands."},
	UNARY_EXPRESSION_ERROR: {Syntax,
		"Malformed unary expression `{primary_info}`",
		"A unary expression must have exactly one operand."},
	RESERVED_WORD_CONFLICT: {Syntax,
		"Reserved word conflict in `{primary_info}`",
		"Long custom irrational names may not contain a reserved prefix or keyword."},
	ABSOLUTE_SYMBOL_MISMATCH: {Syntax,
		"Mismatched absolute value symbol `{primary_info}`",
		"Absolute value bars must be paired left and right."},
	DOT_SYNTAX_ERROR: {Syntax,
		"Dot symbol detected during static checking `{primary_info}`",
		"Decimals must have exactly one decimal point separating integer and fractional digits."},
	COLON_SYNTAX_ERROR: {Syntax,
		"Colon symbol detected during static checking `{primary_info}`",
		"':' may only appear inside an explicit recurring-decimal literal."},
	UNEXPECTED_TOKEN: {Syntax,
		"Unexpected token `{primary_info}`",
		"Check the expression around the marked position."},
	UNEXPECTED_END_OF_EXPRESSION: {Syntax,
		"Unexpected end of expression",
		"The expression ended before a required token was found."},

	INVALID_INTEGER: {Value,
		"Invalid integer literal `{primary_info}`",
		"Integers must be all digits with no leading zero, except the literal '0' itself."},
	INVALID_FINITE_DECIMAL: {Value,
		"Invalid finite decimal `{primary_info}`",
		"A finite decimal must be digits, a single '.', then digits."},
	INVALID_INFINITE_DECIMAL: {Value,
		"Invalid recurring decimal `{primary_info}`",
		"A recurring decimal is either 3 to 6 trailing dots after a finite decimal, or 'a.b:r'."},
	INVALID_PERCENTAGE: {Value,
		"Invalid percentage `{primary_info}`",
		"A percentage must be a valid integer or finite decimal immediately followed by '%'."},
	INVALID_NATIVE_IRRATIONAL: {Value,
		"Invalid native irrational `{primary_info}`",
		"Only 'π' and '𝑒' are native irrationals."},
	INVALID_SHORT_CUSTOM_IRRATIONAL: {Value,
		"Invalid short custom irrational `{primary_info}`",
		"A short custom irrational is exactly one character that is not already a reserved symbol."},
	INVALID_LONG_CUSTOM_IRRATIONAL: {Value,
		"Invalid long custom irrational `{primary_info}`",
		"A long custom irrational must be wrapped as '<name>'."},
	INVALID_OPERATOR: {Value,
		"Invalid operator `{primary_info}`",
		"Check the operator against the symbol-alias table."},
	INVALID_BRACKET: {Value,
		"Invalid bracket `{primary_info}`",
		"Only '(', ')', '[', ']', '{', '}' are recognized brackets."},
	INVALID_FUNCTION: {Value,
		"Invalid function name `{primary_info}`",
		"Check the function name against the function-alias table."},
	INVALID_PARAM_SEPARATOR: {Value,
		"Invalid parameter separator `{primary_info}`",
		"Only ',' and ';' are recognized parameter separators."},
	INVALID_IRRATIONAL_PARAM: {Value,
		"Invalid irrational parameter `{primary_info}`",
		"An irrational parameter is an optional sign, digits, at most one '.', then '?'."},
	UNKNOWN_TOKEN: {Value,
		"Unrecognized character `{primary_info}`",
		"Check the expression for characters outside the supported alphabet."},
	NOT_IN_DOMAIN: {Value,
		"Value `{primary_info}` is not in the domain of `{secondary_info}`",
		"Check the operand against the operation's domain."},

	DIVIDE_BY_ZERO: {Calculation,
		"Division by zero",
		"Check the denominator of the division or modulo operation."},
	ZERO_TO_THE_POWER_OF_ZERO: {Calculation,
		"0^0 is undefined",
		"Supply a nonzero base or a nonzero exponent."},
	DOMAIN_ERROR: {Calculation,
		"`{primary_info}` is outside the domain of `{secondary_info}`",
		"Check the operand against the operation's domain."},
	UNSUPPORTED_OPERATOR: {Calculation,
		"Operator `{primary_info}` is not supported in this context",
		"Check the operator and the types of its operands."},
	UNSUPPORTED_FUNCTION: {Calculation,
		"Function `{primary_info}` is not supported",
		"Check the function name against the function-alias table."},

	MISSING_PARAM: {Conversion,
		"Custom irrational `{primary_info}` has no parameter to convert with",
		"Attach a '?'-suffixed numeric tag to the custom irrational before converting to float."},
	NATIVE_PARAM: {Conversion,
		"Native irrational `{primary_info}` cannot carry a parameter",
		"Only custom irrationals accept a '?'-suffixed numeric tag."},

	TIMEOUT: {Timeout,
		"Calculation time exceeded the set maximum time of {time_limit}s",
		"Check your expression or increase the time limit."},
}
