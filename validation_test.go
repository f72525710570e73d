// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import (
	"testing"

	"code.hybscloud.com/adt"
)

func TestValidationVariantExclusivity(t *testing.T) {
	v := adt.Valid[Log](42)
	if !v.IsValid() || v.IsInvalid() {
		t.Fatalf("Valid should be Valid and not Invalid")
	}
	i := adt.Invalid[Log, int]("e")
	if i.IsValid() || !i.IsInvalid() {
		t.Fatalf("Invalid should be Invalid and not Valid")
	}
}

func TestValidationAccessors(t *testing.T) {
	v := adt.Valid[Log](42)
	if x, ok := v.GetValid(); !ok || x != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", x, ok)
	}
	i := adt.Invalid[Log, int]("e")
	if e, ok := i.GetInvalid(); !ok || e != "e" {
		t.Fatalf("got (%q, %v), want (e, true)", e, ok)
	}
	if got := i.GetOrElse(7); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestMatchValidation(t *testing.T) {
	got := adt.MatchValidation(adt.Valid[Log](2),
		func(e Log) string { return "invalid" },
		func(a int) string { return "valid" })
	if got != "valid" {
		t.Fatalf("got %q, want %q", got, "valid")
	}
	got = adt.MatchValidation(adt.Invalid[Log, int]("e"),
		func(e Log) string { return "invalid" },
		func(a int) string { return "valid" })
	if got != "invalid" {
		t.Fatalf("got %q, want %q", got, "invalid")
	}
}

func TestMapValidation(t *testing.T) {
	if v, _ := adt.MapValidation(adt.Valid[Log](5), func(x int) int { return x * 2 }).GetValid(); v != 10 {
		t.Fatalf("got %d, want 10", v)
	}
	calls := 0
	got := adt.MapValidation(adt.Invalid[Log, int]("e"), func(x int) int { calls++; return x })
	if got.IsValid() || calls != 0 {
		t.Fatalf("map over Invalid should not invoke f")
	}
}

func TestFlatMapValidationFailFast(t *testing.T) {
	calls := 0
	next := func(x int) adt.Validation[Log, int] {
		calls++
		return adt.Invalid[Log, int]("second")
	}
	got := adt.FlatMapValidation(adt.Invalid[Log, int]("first"), next)
	if e, _ := got.GetInvalid(); e != "first" || calls != 0 {
		t.Fatalf("flat map should halt on the first Invalid without accumulating")
	}
}

func TestMapInvalid(t *testing.T) {
	got := adt.MapInvalid(adt.Invalid[Log, int]("e"), func(e Log) string { return string(e) + "!" })
	if e, _ := got.GetInvalid(); e != "e!" {
		t.Fatalf("got %q, want %q", e, "e!")
	}
	kept := adt.MapInvalid(adt.Valid[Log](3), func(e Log) string { return "x" })
	if v, _ := kept.GetValid(); v != 3 {
		t.Fatalf("map invalid should keep Valid unchanged")
	}
}

func TestZipWithValidationAccumulates(t *testing.T) {
	got := adt.ZipWithValidation(
		adt.Invalid[Log, int]("first"),
		adt.Invalid[Log, int]("second"),
		func(a, b int) int { return a + b },
	)
	if e, _ := got.GetInvalid(); e != "firstsecond" {
		t.Fatalf("both Invalid sides should combine, got %q", e)
	}
	one := adt.ZipWithValidation(adt.Invalid[Log, int]("only"), adt.Valid[Log](2), func(a, b int) int { return a + b })
	if e, _ := one.GetInvalid(); e != "only" {
		t.Fatalf("a single Invalid side should be kept as-is, got %q", e)
	}
	ok := adt.ZipWithValidation(adt.Valid[Log](3), adt.Valid[Log](4), func(a, b int) int { return a + b })
	if v, _ := ok.GetValid(); v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
}

func TestZipValidation(t *testing.T) {
	p, _ := adt.ZipValidation(adt.Valid[Log](1), adt.Valid[Log]("x")).GetValid()
	if p.Fst != 1 || p.Snd != "x" {
		t.Fatalf("got %v, want pair (1, x)", p)
	}
	bad := adt.ZipValidation(adt.Invalid[Log, int]("a"), adt.Invalid[Log, string]("b"))
	if e, _ := bad.GetInvalid(); e != "ab" {
		t.Fatalf("got %q, want %q", e, "ab")
	}
}

func TestRecoverValidation(t *testing.T) {
	got := adt.RecoverValidation(adt.Invalid[Log, int]("e"), func(e Log) adt.Validation[Log, int] {
		return adt.Valid[Log](len(e))
	})
	if v, _ := got.GetValid(); v != 1 {
		t.Fatalf("got %d, want 1", v)
	}
}

func TestEqualValidation(t *testing.T) {
	if !adt.EqualValidation(adt.Valid[Log](Num(1)), adt.Valid[Log](Num(1))) {
		t.Fatalf("equal Valids should be equal")
	}
	if adt.EqualValidation(adt.Valid[Log](Num(1)), adt.Invalid[Log, Num]("e")) {
		t.Fatalf("Valid and Invalid should not be equal")
	}
}

func TestCompareValidation(t *testing.T) {
	if adt.CompareValidation(adt.Invalid[Log, Num]("z"), adt.Valid[Log](Num(-5))) >= 0 {
		t.Fatalf("Invalid should order before any Valid")
	}
	if adt.CompareValidation(adt.Valid[Log](Num(1)), adt.Valid[Log](Num(2))) >= 0 {
		t.Fatalf("payloads should decide between Valids")
	}
}

func TestCombineValidation(t *testing.T) {
	both := adt.CombineValidation(adt.Invalid[Log, Num]("a"), adt.Invalid[Log, Num]("b"))
	if e, _ := both.GetInvalid(); e != "ab" {
		t.Fatalf("two Invalid sides should merge errors, got %q", e)
	}
	one := adt.CombineValidation(adt.Valid[Log](Num(1)), adt.Invalid[Log, Num]("b"))
	if e, _ := one.GetInvalid(); e != "b" {
		t.Fatalf("a single Invalid side should win, got %q", e)
	}
	ok := adt.CombineValidation(adt.Valid[Log](Num(2)), adt.Valid[Log](Num(3)))
	if v, _ := ok.GetValid(); v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
}
