/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"github.com/suparena/polyserde"
	"github.com/suparena/polyserde/registry"
)

// Shape is the polymorphic interface used across codec tests.
type Shape interface {
	polyserde.Tagged
	Area() float64
}

type Circle struct {
	Radius float64 `json:"radius" yaml:"radius" dynamodbav:"radius"`
}

func (*Circle) TypeTag() string { return "Circle" }
func (c *Circle) Area() float64 { return 3.14159265 * c.Radius * c.Radius }

type Rect struct {
	Width  float64 `json:"width" yaml:"width" dynamodbav:"width"`
	Height float64 `json:"height" yaml:"height" dynamodbav:"height"`
}

func (*Rect) TypeTag() string { return "Rect" }
func (r *Rect) Area() float64 { return r.Width * r.Height }

// S mirrors the smallest useful concrete type: one int field.
type S struct {
	Data int32 `json:"data" yaml:"data" dynamodbav:"data"`
}

func (*S) TypeTag() string { return "S" }
func (*S) Area() float64   { return 0 }

// Ghost is a Shape whose tag is never registered.
type Ghost struct {
	Sides int `json:"sides" yaml:"sides" dynamodbav:"sides"`
}

func (*Ghost) TypeTag() string { return "Ghost" }
func (*Ghost) Area() float64   { return 0 }

// Both byte codecs satisfy the Serde contract.
var (
	_ polyserde.Serde[Shape] = (*JSON[Shape])(nil)
	_ polyserde.Serde[Shape] = (*YAML[Shape])(nil)
)

func newShapeRegistry() *registry.Registry[Shape] {
	r := registry.New[Shape]()
	registry.MustRegister(r, "Circle", registry.DecodeAs[Shape, Circle]())
	registry.MustRegister(r, "Rect", registry.DecodeAs[Shape, Rect]())
	registry.MustRegister(r, "S", registry.DecodeAs[Shape, S]())
	return r
}
