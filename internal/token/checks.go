package token

import "strings"

// checkLegal dispatches to the kind-specific validator, mirroring
// Token._check_legal in the source implementation: every kind has its own
// shape rule and a token is only ever as trustworthy as that rule.
func (t Token) checkLegal() bool {
	switch t.Kind {
	case Integer:
		return checkInteger(t.Value)
	case FiniteDecimal:
		return checkFiniteDecimal(t.Value)
	case InfiniteRecurringDecimal:
		return checkInfiniteDecimal(t.Value)
	case Percentage:
		return checkPercentage(t.Value)
	case NativeIrrationalNumber:
		return t.Value == "π" || t.Value == "𝑒"
	case ShortCustomIrrational:
		return len([]rune(t.Value)) == 1
	case LongCustomIrrational:
		return strings.HasPrefix(t.Value, "<") && strings.HasSuffix(t.Value, ">") && len(t.Value) > 2
	case Operator:
		return t.Value != ""
	case LeftBracket:
		return t.Value == "(" || t.Value == "[" || t.Value == "{"
	case RightBracket:
		return t.Value == ")" || t.Value == "]" || t.Value == "}"
	case ParameterSeparator:
		return t.Value == "," || t.Value == ";"
	case Function:
		return t.Value != ""
	case IrrationalParam:
		return checkIrrationalParam(t.Value)
	default:
		return false
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func checkInteger(v string) bool {
	return isDigits(v) && (v == "0" || v[0] != '0')
}

func checkFiniteDecimal(v string) bool {
	parts := strings.Split(v, ".")
	return len(parts) == 2 && isDigits(parts[0]) && isDigits(parts[1])
}

// checkInfiniteDecimal accepts either the dotted-ellipsis form (3.14...,
// 3..6 trailing dots) or the explicit-repetend colon form (2.3:4).
func checkInfiniteDecimal(v string) bool {
	if strings.Contains(v, ".") {
		trimmed := strings.TrimRight(v, ".")
		dots := len(v) - len(trimmed)
		if dots >= 3 && dots <= 6 && strings.Contains(trimmed, ".") {
			parts := strings.SplitN(trimmed, ".", 2)
			if len(parts) == 2 && isDigits(parts[0]) && isDigits(parts[1]) {
				return true
			}
		}
	}
	if strings.Contains(v, ":") {
		parts := strings.SplitN(v, ":", 2)
		if len(parts) == 2 {
			decimalPart, integerPart := parts[0], parts[1]
			dp := strings.SplitN(decimalPart, ".", 2)
			if strings.Contains(decimalPart, ".") && len(dp) == 2 &&
				isDigits(dp[0]) && isDigits(dp[1]) && isDigits(integerPart) {
				return true
			}
		}
	}
	return false
}

func checkPercentage(v string) bool {
	if !strings.HasSuffix(v, "%") {
		return false
	}
	numberPart := v[:len(v)-1]
	if strings.Contains(numberPart, ".") {
		parts := strings.SplitN(numberPart, ".", 2)
		return len(parts) == 2 && isDigits(parts[0]) && isDigits(parts[1])
	}
	return isDigits(numberPart)
}

// checkIrrationalParam validates a trailing '?'-terminated numeric tag: an
// optional leading sign, digits, at most one '.', then '?'.
func checkIrrationalParam(v string) bool {
	if len(v) <= 1 || !strings.HasSuffix(v, "?") {
		return false
	}
	body := v[:len(v)-1]
	start := 0
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		start = 1
	}
	if start >= len(body) {
		return false
	}
	sawDot := false
	for _, c := range body[start:] {
		if c == '.' {
			if sawDot {
				return false
			}
			sawDot = true
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
