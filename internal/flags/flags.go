// Package flags scans raw command-line arguments for fg's long flags.
//
// fg does not use a flag parser for its operations: a flag may appear anywhere
// in the argument list and may carry its value inline or as the next token.
//
//	--commit=msg     value "msg"
//	--commit msg     value "msg"
//	--commit         present, no value
//	--commit --push  present, no value (next token starts with "-")
package flags

import "strings"

// Extract returns the value of the first occurrence of flag in args.
// ok is false if the flag does not appear at all. A flag given without a
// value yields ("", true), so callers can tell "absent" from "empty".
func Extract(args []string, flag string) (value string, ok bool) {
	prefix := flag + "="
	for i, a := range args {
		if v, found := strings.CutPrefix(a, prefix); found {
			return v, true
		}
		if a != flag {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			return args[i+1], true
		}
		return "", true
	}
	return "", false
}

// Has reports whether any of names appears in args as an exact token.
func Has(args []string, names ...string) bool {
	for _, a := range args {
		for _, n := range names {
			if a == n {
				return true
			}
		}
	}
	return false
}

// Trailing returns the tokens following flag's value, up to the next token
// starting with "--". For the bare form the value is the token right after
// the flag; for the inline form (--flag=value) it is part of the flag token.
//
//	--createAlias save "add ." "commit -m wip" --verbose
//
// yields ["add .", "commit -m wip"]. Returns nil if flag is absent or nothing
// follows its value.
func Trailing(args []string, flag string) []string {
	start, end := TrailingSpan(args, flag)
	if start == end {
		return nil
	}
	return args[start:end]
}

// TrailingSpan returns the index range [start, end) of the tokens Trailing
// captures. start == end when there are none.
func TrailingSpan(args []string, flag string) (start, end int) {
	prefix := flag + "="
	for i, a := range args {
		switch {
		case strings.HasPrefix(a, prefix):
			start = i + 1
		case a == flag:
			// skip the value token, if there is one
			start = i + 1
			if start < len(args) && !strings.HasPrefix(args[start], "-") {
				start++
			}
		default:
			continue
		}

		start = min(start, len(args))
		end = start
		for end < len(args) && !strings.HasPrefix(args[end], "--") {
			end++
		}
		return start, end
	}
	return 0, 0
}
