// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package catalog

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var jsonNull = []byte("null")

// Optional is a raw input value that is either present or absent.
//
// A JSON null, a missing key, and a value of the wrong JSON type all decode
// as absent. Decoding never fails, so one hostile record cannot reject the
// whole catalog.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Present reports whether a value was decoded.
func (o Optional[T]) Present() bool {
	return o.present
}

// OrElse returns the value when present, def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	*o = Optional[T]{}
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	o.value = v
	o.present = true
	return nil
}

// MarshalJSON implements json.Marshaler. Absent values encode as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// ScalarKind identifies which JSON scalar a Scalar was decoded from.
type ScalarKind int

const (
	ScalarText ScalarKind = iota
	ScalarNumber
)

// Scalar is a raw field the export encodes as either a string or a number.
type Scalar struct {
	Kind ScalarKind
	Text string
	Num  float64
}

// Text returns a present text Scalar.
func Text(s string) Optional[Scalar] {
	return Some(Scalar{Kind: ScalarText, Text: s})
}

// Number returns a present numeric Scalar.
func Number(f float64) Optional[Scalar] {
	return Some(Scalar{Kind: ScalarNumber, Num: f})
}

// UnmarshalJSON accepts a JSON string or number and rejects everything else.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errNotScalar
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = Scalar{Kind: ScalarText, Text: text}
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errNotScalar
	}
	*s = Scalar{Kind: ScalarNumber, Num: f}
	return nil
}

// MarshalJSON encodes the scalar in its original JSON form.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.Kind == ScalarNumber {
		return json.Marshal(s.Num)
	}
	return json.Marshal(s.Text)
}

// Blank reports whether the scalar carries no usable value: empty or
// whitespace-only text.
func (s Scalar) Blank() bool {
	return s.Kind == ScalarText && strings.TrimSpace(s.Text) == ""
}

// Int resolves the scalar as an integer. Native numbers are truncated toward
// zero. Text is read like a leading-integer parse: surrounding whitespace is
// skipped, an optional sign and the leading decimal digits are consumed, and
// anything after them is ignored ("12abc" is 12, "90.7" is 90). Values that
// are not finite or do not fit an int are rejected.
func (s Scalar) Int() (int, bool) {
	if s.Kind == ScalarNumber {
		if math.IsNaN(s.Num) || math.IsInf(s.Num, 0) {
			return 0, false
		}
		t := math.Trunc(s.Num)
		if t >= math.MaxInt64 || t < math.MinInt64 {
			return 0, false
		}
		return int(t), true
	}
	prefix := leadingInteger.FindString(strings.TrimSpace(s.Text))
	if prefix == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// Float resolves the scalar as a general number, reading text by its
// leading numeric prefix ("12.50 EUR" is 12.5). Non-finite values are
// rejected.
func (s Scalar) Float() (float64, bool) {
	f := s.Num
	if s.Kind == ScalarText {
		prefix := leadingNumber.FindString(strings.TrimSpace(s.Text))
		if prefix == "" {
			return 0, false
		}
		var err error
		if f, err = strconv.ParseFloat(prefix, 64); err != nil {
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
