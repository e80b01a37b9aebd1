/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2021 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

// StringInterner hands out a canonical *ObjString per distinct content, so
// that two Values built from equal source text (two uses of the same
// identifier, or the same string literal written twice) share one object
// instead of each allocating its own. Value.Kind doesn't distinguish
// *ObjString identity in any way -- ValueObject values still compare equal
// by content (see Equal) -- but sharing the pointer is what lets a future VM
// treat "same interned string" as a cheap pointer compare instead of always
// falling back to a content compare.
type StringInterner struct {
	strings map[string]*ObjString
}

// NewStringInterner creates and returns a new StringInterner.
func NewStringInterner() *StringInterner {
	return &StringInterner{
		strings: make(map[string]*ObjString),
	}
}

// Intern interns the string s and returns an *ObjString with the same
// contents as s, but that is guaranteed to be unique within si. Or maybe
// it's clearer this way: if si already contains a string with the same
// contents as s, it returns that other *ObjString: same content, but at a
// different memory location than a fresh one would be.
func (si *StringInterner) Intern(s string) *ObjString {
	if r, ok := si.strings[s]; ok {
		return r
	}
	obj := &ObjString{Chars: s}
	si.strings[s] = obj
	return obj
}

// InternValue interns s and wraps the result as a ValueObject, which is the
// only shape callers in pkg/compiler actually want: an identifier name or a
// string literal destined straight for a Chunk's constant pool.
func (si *StringInterner) InternValue(s string) Value {
	return NewValueObjString(si.Intern(s))
}
