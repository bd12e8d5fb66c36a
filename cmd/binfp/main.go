// Command binfp evaluates one decode or arithmetic operation over
// binary32/binary16 hex encodings.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/zerfoo/binfp"
)

func main() {
	n, err := run(os.Args)
	if err != nil {
		log.SetFlags(0)
		log.Fatalf("error: %v", err)
	}
	fmt.Println(binfp.FormatText(n))
}

// run implements the CLI grammar <mode> <rounding> <hex> [<op> <hex>].
// os.Args includes the program name, so a valid invocation has length
// 4 (decode only) or 6 (decode plus one binary operation).
func run(args []string) (binfp.Number, error) {
	if len(args) != 4 && len(args) != 6 {
		return binfp.Number{}, &binfp.ArgError{
			Op:    "args",
			Value: len(args) - 1,
			Msg:   "expected 3 or 5 arguments: <mode> <rounding> <hex> [<op> <hex>]",
			Code:  binfp.ErrArgCount,
		}
	}

	format, ok := binfp.ParseFormat(args[1][0])
	if len(args[1]) != 1 || !ok {
		return binfp.Number{}, &binfp.ArgError{
			Op: "mode", Value: args[1], Msg: "mode must be 'f' or 'h'", Code: binfp.ErrBadMode,
		}
	}

	roundingInt, err := strconv.Atoi(args[2])
	if err != nil || roundingInt < 0 || roundingInt > 3 {
		return binfp.Number{}, &binfp.ArgError{
			Op: "rounding", Value: args[2], Msg: "rounding must be 0..3", Code: binfp.ErrBadRounding,
		}
	}
	mode := binfp.RoundingMode(roundingInt)

	bits1, err := parseHex(args[3])
	if err != nil {
		return binfp.Number{}, &binfp.ArgError{
			Op: "hex", Value: args[3], Msg: "malformed hex operand", Code: binfp.ErrBadHex,
		}
	}
	a := binfp.Decode(bits1, format)

	if len(args) == 4 {
		return a, nil
	}

	op := args[4]
	bits2, err := parseHex(args[5])
	if err != nil {
		return binfp.Number{}, &binfp.ArgError{
			Op: "hex", Value: args[5], Msg: "malformed hex operand", Code: binfp.ErrBadHex,
		}
	}
	b := binfp.Decode(bits2, format)

	switch op {
	case "+":
		return binfp.Add(a, b, mode), nil
	case "-":
		return binfp.Sub(a, b, mode), nil
	case "*":
		return binfp.Mul(a, b, mode), nil
	case "/":
		return binfp.Div(a, b, mode), nil
	default:
		return binfp.Number{}, &binfp.ArgError{
			Op: "op", Value: op, Msg: "op must be one of + - * /", Code: binfp.ErrBadOp,
		}
	}
}

// parseHex parses a hexadecimal integer, with or without a 0x prefix,
// as a 32-bit unsigned bit pattern.
func parseHex(s string) (uint32, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(digits, 16, 32)
	return uint32(v), err
}
