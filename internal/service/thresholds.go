package service

import "math"

// rule asocia un limite numerico con el valor que corresponde al tramo.
type rule[T any] struct {
	bound float64
	value T
}

// ladder es una tabla ordenada de tramos evaluada por "primer match".
// Con ascending=true cada regla aplica si v < bound (limites superiores exclusivos);
// con ascending=false aplica si v >= bound (pisos inclusivos, de mayor a menor).
type ladder[T any] struct {
	rules     []rule[T]
	fallback  T
	ascending bool
}

// below construye una escalera de limites superiores exclusivos: <16, <18.5, <25 ...
func below[T any](fallback T, rules ...rule[T]) ladder[T] {
	return ladder[T]{rules: rules, fallback: fallback, ascending: true}
}

// atLeast construye una escalera de pisos inclusivos: >=3, >=2, >=1 ...
func atLeast[T any](fallback T, rules ...rule[T]) ladder[T] {
	return ladder[T]{rules: rules, fallback: fallback, ascending: false}
}

func (l ladder[T]) lookup(v float64) T {
	if math.IsNaN(v) {
		return l.fallback
	}
	for _, r := range l.rules {
		if l.ascending && v < r.bound {
			return r.value
		}
		if !l.ascending && v >= r.bound {
			return r.value
		}
	}
	return l.fallback
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
