package expr

// A Function is an expression whose evaluation calls a function previously defined.
type Function interface {
	Expr

	// Returns the list of parameters this function has received.
	Params() []Expr
}
