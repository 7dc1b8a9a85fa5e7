/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suparena/polyserde/errors"
)

func TestYAMLRoundTrip(t *testing.T) {
	c := NewYAML[Shape](newShapeRegistry())

	shapes := []Shape{
		&S{Data: 0},
		&Circle{Radius: 2.5},
		&Rect{Width: 3, Height: 4},
	}

	for _, in := range shapes {
		data, err := c.Marshal(in)
		require.NoError(t, err, "marshal %q", in.TypeTag())

		out, err := c.Unmarshal(data)
		require.NoError(t, err, "unmarshal %q", in.TypeTag())
		require.Equal(t, in, out)
	}
}

func TestYAMLMarshalShape(t *testing.T) {
	c := NewYAML[Shape](newShapeRegistry())

	data, err := c.Marshal(&Rect{Width: 3, Height: 4})
	require.NoError(t, err)
	require.YAMLEq(t, "Rect:\n  width: 3\n  height: 4\n", string(data))
}

func TestYAMLUnmarshalUnknownTag(t *testing.T) {
	c := NewYAML[Shape](newShapeRegistry())

	_, err := c.Unmarshal([]byte("Ghost: {}\n"))
	require.Error(t, err)
	require.True(t, errors.IsUnknownType(err))
	require.Contains(t, err.Error(), "Ghost")
}

func TestYAMLMarshalUnregisteredType(t *testing.T) {
	c := NewYAML[Shape](newShapeRegistry())

	_, err := c.Marshal(&Ghost{Sides: 3})
	require.Error(t, err)
	require.True(t, errors.IsUnknownType(err))
}

func TestYAMLUnmarshalMalformed(t *testing.T) {
	c := NewYAML[Shape](newShapeRegistry())

	cases := []struct {
		name  string
		input string
	}{
		{"empty document", ""},
		{"zero keys", "{}\n"},
		{"multiple keys", "Circle:\n  radius: 1\nRect:\n  width: 1\n"},
		{"sequence", "- 1\n- 2\n"},
		{"scalar", "Circle\n"},
		{"non-string key", "7: {}\n"},
		{"unparseable", "Circle: [unclosed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Unmarshal([]byte(tc.input))
			require.Error(t, err)
			require.True(t, errors.IsMalformedTag(err), "got %v", err)
		})
	}
}

func TestYAMLUnmarshalPayloadFailure(t *testing.T) {
	c := NewYAML[Shape](newShapeRegistry())

	_, err := c.Unmarshal([]byte("Circle:\n  radius: [1, 2]\n"))
	require.Error(t, err)
	require.True(t, errors.IsPayloadError(err))
}
