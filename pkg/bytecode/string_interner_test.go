/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2021 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternReturnsSamePointerForEqualContent(t *testing.T) {
	si := NewStringInterner()

	a := si.Intern("hello")
	b := si.Intern("hello")
	c := si.Intern("world")

	assert.Same(t, a, b, "two interns of the same content must share one *ObjString")
	assert.NotSame(t, a, c)
}

func TestInternValueWrapsTheSameObjString(t *testing.T) {
	si := NewStringInterner()

	v1 := si.InternValue("hello")
	v2 := si.InternValue("hello")

	assert.True(t, v1.IsObject())
	assert.Same(t, v1.AsObjString(), v2.AsObjString())

	// Values of equal-content interned strings compare equal regardless of
	// whether the pool happened to share the pointer -- Equal is a content
	// comparison, not an identity one.
	assert.True(t, Equal(v1, v2))
}
