// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

import (
	"fmt"
	"math"
)

// Element is implemented by every value with its own fixed byte layout
type Element interface {
	Size() int
	Encode(w *Writer)
	Decode(r *Reader) error
}

type elementPtr[T any] interface {
	*T
	Element
}

// Rule is one field of a Layout. The set of rules is closed: layouts are built
// only from the constructors in this package.
type Rule interface {
	size() int
	encode(w *Writer)
	decode(r *Reader) error
}

// Layout is the ordered field list of a value
type Layout []Rule

func (l Layout) Size() int {
	ret := 0
	for _, rule := range l {
		ret += rule.size()
	}
	return ret
}

func (l Layout) Encode(w *Writer) {
	for _, rule := range l {
		rule.encode(w)
	}
}

// Decode runs each rule in order against r. Rules see the values decoded by
// earlier rules.
func (l Layout) Decode(r *Reader) error {
	for _, rule := range l {
		if err := rule.decode(r); err != nil {
			return err
		}
	}
	return nil
}

func checkWidth(width int) {
	switch width {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Sprintf("unsupported field width: %d", width))
	}
}

func maxForWidth(width int) uint64 {
	if width == 8 {
		return math.MaxUint64
	}
	return (uint64(1) << (8 * width)) - 1
}

func readUint(r *Reader, width int) (uint64, error) {
	switch width {
	case 1:
		v, err := r.Uint8()
		return uint64(v), err
	case 2:
		v, err := r.Uint16()
		return uint64(v), err
	case 4:
		v, err := r.Uint32()
		return uint64(v), err
	default:
		return r.Uint64()
	}
}

// #nosec G115
func writeUint(w *Writer, width int, v uint64) {
	switch width {
	case 1:
		w.PutUint8(uint8(v))
	case 2:
		w.PutUint16(uint16(v))
	case 4:
		w.PutUint32(uint32(v))
	default:
		w.PutUint64(v)
	}
}

// prefixValue converts a collection length for a prefix of the given width
func prefixValue(length int, width int) uint64 {
	v := uint64(length) // #nosec G115
	if v > maxForWidth(width) {
		panic(
			fmt.Sprintf(
				"length %d does not fit in a %d byte prefix",
				length,
				width,
			),
		)
	}
	return v
}

type scalarRule struct {
	width int
	get   func() uint64
	set   func(uint64)
}

func (s scalarRule) size() int {
	return s.width
}

func (s scalarRule) encode(w *Writer) {
	writeUint(w, s.width, s.get())
}

func (s scalarRule) decode(r *Reader) error {
	v, err := readUint(r, s.width)
	if err != nil {
		return err
	}
	s.set(v)
	return nil
}

func U8[T ~uint8](p *T) Rule {
	return scalarRule{
		width: 1,
		get:   func() uint64 { return uint64(*p) },
		set:   func(v uint64) { *p = T(v) }, // #nosec G115
	}
}

func U16[T ~uint16](p *T) Rule {
	return scalarRule{
		width: 2,
		get:   func() uint64 { return uint64(*p) },
		set:   func(v uint64) { *p = T(v) }, // #nosec G115
	}
}

func U32[T ~uint32](p *T) Rule {
	return scalarRule{
		width: 4,
		get:   func() uint64 { return uint64(*p) },
		set:   func(v uint64) { *p = T(v) }, // #nosec G115
	}
}

func U64[T ~uint64](p *T) Rule {
	return scalarRule{
		width: 8,
		get:   func() uint64 { return uint64(*p) },
		set:   func(v uint64) { *p = T(v) },
	}
}

// #nosec G115
func I8[T ~int8](p *T) Rule {
	return scalarRule{
		width: 1,
		get:   func() uint64 { return uint64(uint8(*p)) },
		set:   func(v uint64) { *p = T(int8(uint8(v))) },
	}
}

// #nosec G115
func I16[T ~int16](p *T) Rule {
	return scalarRule{
		width: 2,
		get:   func() uint64 { return uint64(uint16(*p)) },
		set:   func(v uint64) { *p = T(int16(uint16(v))) },
	}
}

type fixedRule []byte

func (f fixedRule) size() int {
	return len(f)
}

func (f fixedRule) encode(w *Writer) {
	w.Write(f)
}

func (f fixedRule) decode(r *Reader) error {
	return r.ReadFull(f)
}

// Fixed is an opaque fixed-size byte array. The slice must alias the field's
// storage, e.g. Fixed(v.Key[:]).
func Fixed(b []byte) Rule {
	return fixedRule(b)
}

type reservedRule int

func (rr reservedRule) size() int {
	return int(rr)
}

func (rr reservedRule) encode(w *Writer) {
	writeUint(w, int(rr), 0)
}

func (rr reservedRule) decode(r *Reader) error {
	// Non-zero reserved values are accepted and dropped
	_, err := readUint(r, int(rr))
	return err
}

// Reserved is an alignment field: always written as zero, never checked on read
func Reserved(width int) Rule {
	checkWidth(width)
	return reservedRule(width)
}

type structRule struct {
	e Element
}

func (s structRule) size() int {
	return s.e.Size()
}

func (s structRule) encode(w *Writer) {
	s.e.Encode(w)
}

func (s structRule) decode(r *Reader) error {
	return s.e.Decode(r)
}

// Struct embeds a nested element in place
func Struct(e Element) Rule {
	return structRule{e: e}
}

// Count is the explicit element count preceding a counted array. It is itself a
// rule and must appear in the layout before the array it counts.
type Count struct {
	width  int
	length func() int
	n      uint64
}

// CountPrefix declares a count field of the given width for *items
func CountPrefix[T any](width int, items *[]T) *Count {
	checkWidth(width)
	return &Count{
		width:  width,
		length: func() int { return len(*items) },
	}
}

func (c *Count) size() int {
	return c.width
}

func (c *Count) encode(w *Writer) {
	writeUint(w, c.width, prefixValue(c.length(), c.width))
}

func (c *Count) decode(r *Reader) error {
	v, err := readUint(r, c.width)
	if err != nil {
		return err
	}
	c.n = v
	return nil
}

// boundedCount rejects counts that cannot possibly be satisfied by the
// remaining input before anything is allocated
func boundedCount(r *Reader, n uint64, elementSize int) (int, error) {
	have := uint64(r.Len()) // #nosec G115
	if n > have || n*uint64(max(elementSize, 1)) > have { // #nosec G115
		need := uint64(math.MaxInt32)
		if n <= have {
			need = n * uint64(max(elementSize, 1)) // #nosec G115
		}
		return 0, EndOfInputError{
			Offset: r.Offset(),
			Need:   int(need), // #nosec G115
			Have:   r.Len(),
		}
	}
	return int(n), nil // #nosec G115
}

type arrayRule[T any, PT elementPtr[T]] struct {
	items *[]T
	count *Count
}

func (a arrayRule[T, PT]) size() int {
	ret := 0
	for i := range *a.items {
		ret += PT(&(*a.items)[i]).Size()
	}
	return ret
}

func (a arrayRule[T, PT]) encode(w *Writer) {
	for i := range *a.items {
		PT(&(*a.items)[i]).Encode(w)
	}
}

func (a arrayRule[T, PT]) decode(r *Reader) error {
	var zero T
	n, err := boundedCount(r, a.count.n, PT(&zero).Size())
	if err != nil {
		return err
	}
	if n == 0 {
		*a.items = nil
		return nil
	}
	items := make([]T, n)
	for i := range items {
		if err := PT(&items[i]).Decode(r); err != nil {
			return err
		}
	}
	*a.items = items
	return nil
}

// Array is a run of elements whose length was declared by count
func Array[T any, PT elementPtr[T]](items *[]T, count *Count) Rule {
	return arrayRule[T, PT]{items: items, count: count}
}

type scalarArrayRule[T any] struct {
	items *[]T
	count *Count
	width int
	get   func(T) uint64
	set   func(uint64) T
}

func (a scalarArrayRule[T]) size() int {
	return len(*a.items) * a.width
}

func (a scalarArrayRule[T]) encode(w *Writer) {
	for _, item := range *a.items {
		writeUint(w, a.width, a.get(item))
	}
}

func (a scalarArrayRule[T]) decode(r *Reader) error {
	n, err := boundedCount(r, a.count.n, a.width)
	if err != nil {
		return err
	}
	if n == 0 {
		*a.items = nil
		return nil
	}
	items := make([]T, n)
	for i := range items {
		v, err := readUint(r, a.width)
		if err != nil {
			return err
		}
		items[i] = a.set(v)
	}
	*a.items = items
	return nil
}

// Uint16Array is a counted run of 16-bit values, used for enum lists
func Uint16Array[T ~uint16](items *[]T, count *Count) Rule {
	return scalarArrayRule[T]{
		items: items,
		count: count,
		width: 2,
		get:   func(v T) uint64 { return uint64(v) },
		set:   func(v uint64) T { return T(v) }, // #nosec G115
	}
}

// Uint64Array is a counted run of 64-bit values, used for id lists
func Uint64Array[T ~uint64](items *[]T, count *Count) Rule {
	return scalarArrayRule[T]{
		items: items,
		count: count,
		width: 8,
		get:   func(v T) uint64 { return uint64(v) },
		set:   func(v uint64) T { return T(v) },
	}
}

// Length is the explicit byte length preceding a blob. Unlike a Count it
// measures bytes, not elements.
type Length struct {
	width int
	blob  *[]byte
	n     uint64
}

// LengthPrefix declares a byte length field of the given width for *blob
func LengthPrefix(width int, blob *[]byte) *Length {
	checkWidth(width)
	return &Length{width: width, blob: blob}
}

func (l *Length) size() int {
	return l.width
}

func (l *Length) encode(w *Writer) {
	writeUint(w, l.width, prefixValue(len(*l.blob), l.width))
}

func (l *Length) decode(r *Reader) error {
	v, err := readUint(r, l.width)
	if err != nil {
		return err
	}
	l.n = v
	return nil
}

type blobRule struct {
	blob   *[]byte
	length *Length
}

func (b blobRule) size() int {
	return len(*b.blob)
}

func (b blobRule) encode(w *Writer) {
	w.Write(*b.blob)
}

func (b blobRule) decode(r *Reader) error {
	n, err := boundedCount(r, b.length.n, 1)
	if err != nil {
		return err
	}
	if n == 0 {
		*b.blob = nil
		return nil
	}
	data, err := r.Bytes(n)
	if err != nil {
		return err
	}
	*b.blob = data
	return nil
}

// Blob is raw, uninterpreted bytes whose size was declared by length
func Blob(blob *[]byte, length *Length) Rule {
	return blobRule{blob: blob, length: length}
}

type whenRule struct {
	present func() bool
	rule    Rule
}

func (wr whenRule) size() int {
	if !wr.present() {
		return 0
	}
	return wr.rule.size()
}

func (wr whenRule) encode(w *Writer) {
	if wr.present() {
		wr.rule.encode(w)
	}
}

func (wr whenRule) decode(r *Reader) error {
	if !wr.present() {
		return nil
	}
	return wr.rule.decode(r)
}

// When gates rule on a discriminator decoded earlier in the same layout, either
// an enum comparison or a bitmask test
func When(present func() bool, rule Rule) Rule {
	return whenRule{present: present, rule: rule}
}

// HasFlag reports whether every bit of flag is set in mask
func HasFlag[T ~uint8 | ~uint16 | ~uint32 | ~uint64](mask T, flag T) bool {
	return mask&flag == flag
}
