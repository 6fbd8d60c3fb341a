package proto

import "fmt"

// Int reads an integer argument or property value.
func Int(v Value) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%v is not an integer: %w", v, ErrBadArgument)
}

// String reads a string argument or property value.
func String(v Value) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%v is not a string: %w", v, ErrBadArgument)
	}
	return s, nil
}

func argString(args []Value, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing argument %d: %w", i, ErrBadArgument)
	}
	return String(args[i])
}
