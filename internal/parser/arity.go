package parser

// functionArity is the declared argument count for every canonical
// function name the kernel's identity tables dispatch by.
// fixed == false means the count is not statically checked here (reserved
// for variadic-style functions oloc has none of today).
var functionArity = map[string]int{
	"sqrt": 1, "sq": 1, "cub": 1, "rec": 1, "exp": 1, "fact": 1,
	"abs": 1, "sign": 1, "rad": 1,
	"sin": 1, "cos": 1, "tan": 1, "cot": 1,
	"asin": 1, "acos": 1, "atan": 1, "acot": 1,
	"ln": 1, "lg": 1,
	"pow": 2, "mod": 2, "gcd": 2, "lcm": 2, "log": 2,
}

// arity reports the declared arity for a canonical function name.
func arity(name string) (n int, fixed bool, ok bool) {
	n, ok = functionArity[name]
	return n, true, ok
}
