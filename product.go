// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicboard

import (
	"strings"

	"github.com/pkg/errors"
)

// ProductSize is the side of a product, in virtual pixels.
const ProductSize = 80

// Shape of a product.
type Shape int

// Product shapes.
const (
	Circle Shape = iota
	Square
	Diamond
)

// Color of a product.
type Color int

// Product colors.
const (
	Red Color = iota
	Green
	Blue
	White
)

// Content of a product.
type Content int

// Product contents.
const (
	Empty Content = iota
	Izzo
	Smith
	Basketball
)

var (
	shapeNames   = []string{"circle", "square", "diamond"}
	colorNames   = []string{"red", "green", "blue", "white"}
	contentNames = []string{"", "izzo", "smith", "basketball"}
)

func (s Shape) String() string { return nameOf(shapeNames, int(s)) }
func (c Color) String() string { return nameOf(colorNames, int(c)) }
func (c Content) String() string { return nameOf(contentNames, int(c)) }

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "invalid"
	}
	return names[i]
}

func parseName(what string, names []string, s string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, nil
		}
	}
	return 0, errors.Errorf("unknown %s %q", what, s)
}

// ParseShape returns the shape with the given name.
func ParseShape(s string) (Shape, error) {
	i, err := parseName("shape", shapeNames, s)
	return Shape(i), err
}

// ParseColor returns the color with the given name.
func ParseColor(s string) (Color, error) {
	i, err := parseName("color", colorNames, s)
	return Color(i), err
}

// ParseContent returns the content with the given name. The empty string
// and "none" mean Empty.
func ParseContent(s string) (Content, error) {
	if strings.EqualFold(s, "none") {
		return Empty, nil
	}
	i, err := parseName("content", contentNames, s)
	return Content(i), err
}

// IsProperty reports whether name is a product property a sensor can test
// for: a shape, a color or a non-empty content.
func IsProperty(name string) bool {
	if name == "" {
		return false
	}
	for _, names := range [][]string{shapeNames, colorNames, contentNames} {
		if _, err := parseName("", names, name); err == nil {
			return true
		}
	}
	return false
}

// A Product travels down the conveyor. Products whose properties match the
// level's rule must be kicked off the belt by Sparty.
type Product struct {
	itemBase
	shape   Shape
	color   Color
	content Content
	kick    bool
	kicked  bool
	scored  bool
}

// NewProduct returns a new product. kick tells whether the product is
// expected to be kicked off the belt.
func NewProduct(id string, shape Shape, color Color, content Content, kick bool) *Product {
	return &Product{
		itemBase: itemBase{id: id, size: Size{ProductSize, ProductSize}},
		shape:    shape,
		color:    color,
		content:  content,
		kick:     kick,
	}
}

func (p *Product) Shape() Shape { return p.shape }
func (p *Product) Color() Color { return p.color }
func (p *Product) Content() Content { return p.content }

// ShouldKick reports whether the product is expected to be kicked.
func (p *Product) ShouldKick() bool { return p.kick }

// Kicked reports whether Sparty kicked the product.
func (p *Product) Kicked() bool { return p.kicked }

// Kick marks the product as kicked off the belt.
func (p *Product) Kick() { p.kicked = true }

// Scored reports whether the product has been accounted for on the
// scoreboard.
func (p *Product) Scored() bool { return p.scored }

// OnBelt reports whether the product is still travelling on the conveyor.
func (p *Product) OnBelt() bool { return !p.kicked && !p.scored }

// Matches reports whether the product has the named property.
func (p *Product) Matches(property string) bool {
	if property == "" {
		return false
	}
	return strings.EqualFold(property, p.shape.String()) ||
		strings.EqualFold(property, p.color.String()) ||
		strings.EqualFold(property, p.content.String())
}

// Accept calls v.VisitProduct.
func (p *Product) Accept(v ItemVisitor) error { return v.VisitProduct(p) }
