package pathvars

import "fmt"

// UnknownVariableError reports a bracketed token left over after all known
// substitutions ran. Token includes the angle brackets.
type UnknownVariableError struct {
	Token string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable: %s", e.Token)
}

// DirNotFoundError reports an environment variable or special-folder lookup
// that returned nothing.
type DirNotFoundError struct {
	Name string
}

func (e *DirNotFoundError) Error() string {
	return fmt.Sprintf("cannot resolve directory: %s", e.Name)
}

// UnimplementedVariableError reports a variable whose required context
// (game or backup root) was not supplied by the caller.
type UnimplementedVariableError struct {
	Token string
}

func (e *UnimplementedVariableError) Error() string {
	return fmt.Sprintf("unimplemented variable: %s", e.Token)
}
