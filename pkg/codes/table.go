package codes

import (
	"fmt"
	"strconv"
	"strings"
)

// table indexes one namespace. It is built once during package init and only
// read afterwards.
type table[T ~int32] struct {
	namespace     Namespace
	typeName      string
	vendorSymbol  string
	vendorMessage string

	entries  []Entry[T]
	byCode   map[T]Entry[T]
	bySymbol map[string]T
}

// newTable panics on duplicate values, duplicate symbols or core entries that
// intrude on the vendor range.
func newTable[T ~int32](ns Namespace, typeName, vendorSymbol, vendorMessage string, entries []Entry[T], aliases map[string]T) *table[T] {
	t := &table[T]{
		namespace:     ns,
		typeName:      typeName,
		vendorSymbol:  vendorSymbol,
		vendorMessage: vendorMessage,
		entries:       entries,
		byCode:        make(map[T]Entry[T], len(entries)),
		bySymbol:      make(map[string]T, len(entries)+len(aliases)+1),
	}
	for _, e := range entries {
		if e.Code < 0 || IsVendorError(int32(e.Code)) {
			panic(fmt.Sprintf("codes: %s %s=%d outside core range", ns, e.Symbol, e.Code))
		}
		if prev, ok := t.byCode[e.Code]; ok {
			panic(fmt.Sprintf("codes: %s value %d shared by %s and %s", ns, e.Code, prev.Symbol, e.Symbol))
		}
		if _, ok := t.bySymbol[e.Symbol]; ok {
			panic(fmt.Sprintf("codes: duplicate %s symbol %s", ns, e.Symbol))
		}
		t.byCode[e.Code] = e
		t.bySymbol[e.Symbol] = e.Code
	}
	for symbol, code := range aliases {
		if _, ok := t.byCode[code]; !ok {
			panic(fmt.Sprintf("codes: alias %s points at undefined %s %d", symbol, ns, code))
		}
		t.bySymbol[symbol] = code
	}
	t.bySymbol[vendorSymbol] = T(VendorBase)
	return t
}

func (t *table[T]) lookup(code T) (Entry[T], bool) {
	e, ok := t.byCode[code]
	return e, ok
}

func (t *table[T]) classify(code T) Class {
	if _, ok := t.byCode[code]; ok {
		return ClassCore
	}
	if IsVendorError(int32(code)) {
		return ClassVendor
	}
	return ClassUnknown
}

func (t *table[T]) describe(code T) (string, error) {
	if e, ok := t.byCode[code]; ok {
		return e.Message, nil
	}
	if IsVendorError(int32(code)) {
		return t.vendorMessage, nil
	}
	return "", &UnknownCodeError{Namespace: t.namespace, Code: int32(code)}
}

func (t *table[T]) format(code T) string {
	if e, ok := t.byCode[code]; ok {
		return e.Symbol
	}
	if IsVendorError(int32(code)) {
		if code == T(VendorBase) {
			return t.vendorSymbol
		}
		return t.vendorSymbol + "+" + strconv.FormatInt(int64(code)-VendorBase, 10)
	}
	return fmt.Sprintf("%s(%d)", t.typeName, int32(code))
}

// parse accepts a symbol, an alias, the vendor form BASE+N or a decimal value.
// Decimal values must be core-defined or vendor.
func (t *table[T]) parse(text string) (T, error) {
	s := strings.TrimSpace(text)
	if code, ok := t.bySymbol[s]; ok {
		return code, nil
	}
	if rest, ok := strings.CutPrefix(s, t.vendorSymbol+"+"); ok {
		offset, err := strconv.ParseInt(rest, 10, 32)
		if err != nil || offset < 0 || offset > int64(maxInt32-VendorBase) {
			return 0, fmt.Errorf("parse %s code %q: %w", t.namespace, text, ErrUnknownCode)
		}
		return T(VendorBase + offset), nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s code %q: %w", t.namespace, text, ErrUnknownCode)
	}
	code := T(n)
	if t.classify(code) == ClassUnknown {
		return 0, &UnknownCodeError{Namespace: t.namespace, Code: int32(n)}
	}
	return code, nil
}

func (t *table[T]) registry() []Entry[T] {
	out := make([]Entry[T], len(t.entries))
	copy(out, t.entries)
	return out
}

const maxInt32 = 1<<31 - 1
