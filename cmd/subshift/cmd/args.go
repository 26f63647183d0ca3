package cmd

import "slices"

// normalizeArgs moves negative numbers such as "-5" or "-1.5s" behind a "--"
// so they reach the command as the offset instead of being read as
// shorthand flags. Arguments already containing "--" are left alone.
func normalizeArgs(args []string) []string {
	if slices.Contains(args, "--") {
		return args
	}
	var kept, numbers []string
	for _, arg := range args {
		if isNegativeNumber(arg) {
			numbers = append(numbers, arg)
			continue
		}
		kept = append(kept, arg)
	}
	if len(numbers) == 0 {
		return args
	}
	return append(append(kept, "--"), numbers...)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	c := arg[1]
	return (c >= '0' && c <= '9') || c == '.'
}
