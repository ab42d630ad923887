// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package level loads board declarations from YAML files.
//
// A level lists the items on the board, the gates and the wires between their
// pins:
//
//	name: red products
//	items:
//	  - {kind: conveyor, id: belt, y: 500, length: 1000}
//	  - {kind: sensor, id: cam, y: 300, properties: [red]}
//	  - {kind: sparty, id: sparty, y: 300}
//	  - {kind: product, shape: circle, color: red, kick: true, y: 100}
//	gates:
//	  - {kind: not, id: n}
//	wires:
//	  - {from: cam.red, to: n.in}
//	  - {from: n.out, to: sparty.kick}
//
// Unknown fields are rejected. Items declared without an id get a random one.
package level

import (
	"bytes"
	"io"
	"os"
	"strings"

	lb "github.com/db47h/logicboard"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Item kinds.
const (
	KindBeam       = "beam"
	KindConveyor   = "conveyor"
	KindProduct    = "product"
	KindScoreboard = "scoreboard"
	KindSensor     = "sensor"
	KindSparty     = "sparty"
)

// File is a level declaration.
type File struct {
	Name     string   `yaml:"name" json:"name" jsonschema:"required"`
	Settings Settings `yaml:"settings,omitempty" json:"settings,omitempty"`
	Items    []Item   `yaml:"items" json:"items"`
	Gates    []Gate   `yaml:"gates,omitempty" json:"gates,omitempty"`
	Wires    []Wire   `yaml:"wires,omitempty" json:"wires,omitempty"`
}

// Settings holds per-level engine and scoring settings.
type Settings struct {
	StrictInputs bool `yaml:"strict_inputs,omitempty" json:"strict_inputs,omitempty"`
	Good         *int `yaml:"good,omitempty" json:"good,omitempty"`
	Bad          *int `yaml:"bad,omitempty" json:"bad,omitempty"`
}

// Item declares a board item other than a gate. Fields not used by Kind must
// be left empty.
type Item struct {
	Kind string  `yaml:"kind" json:"kind" jsonschema:"required,enum=beam,enum=conveyor,enum=product,enum=scoreboard,enum=sensor,enum=sparty"`
	ID   string  `yaml:"id,omitempty" json:"id,omitempty"`
	X    float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y    float64 `yaml:"y,omitempty" json:"y,omitempty"`

	// conveyor
	Length  float64 `yaml:"length,omitempty" json:"length,omitempty"`
	Speed   float64 `yaml:"speed,omitempty" json:"speed,omitempty"`
	Stopped bool    `yaml:"stopped,omitempty" json:"stopped,omitempty"`

	// sensor
	Properties []string `yaml:"properties,omitempty" json:"properties,omitempty"`

	// product
	Shape   string `yaml:"shape,omitempty" json:"shape,omitempty"`
	Color   string `yaml:"color,omitempty" json:"color,omitempty"`
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
	Kick    bool   `yaml:"kick,omitempty" json:"kick,omitempty"`
}

// Gate declares a logic gate. Inputs is the input count of AND, OR and NAND
// gates; it defaults to 2.
type Gate struct {
	Kind   string  `yaml:"kind" json:"kind" jsonschema:"required,enum=and,enum=or,enum=nand,enum=not,enum=dff,enum=srff"`
	ID     string  `yaml:"id" json:"id" jsonschema:"required"`
	Inputs int     `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	X      float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty" json:"y,omitempty"`
}

// Wire connects two pins, referenced as item.pin.
type Wire struct {
	From string `yaml:"from" json:"from" jsonschema:"required"`
	To   string `yaml:"to" json:"to" jsonschema:"required"`
}

// Decode reads a level from r.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode level")
	}
	f.normalize()
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads a level from the named file.
func Load(name string) (*File, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read level")
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return f, nil
}

func nfc(s string) string { return norm.NFC.String(strings.TrimSpace(s)) }

// normalize puts ids and pin references in NFC form and assigns ids to
// anonymous items.
func (f *File) normalize() {
	for i := range f.Items {
		it := &f.Items[i]
		it.Kind = strings.ToLower(strings.TrimSpace(it.Kind))
		it.ID = nfc(it.ID)
		if it.ID == "" {
			it.ID = it.Kind + "-" + uuid.Must(uuid.NewV7()).String()
		}
	}
	for i := range f.Gates {
		f.Gates[i].ID = nfc(f.Gates[i].ID)
	}
	for i := range f.Wires {
		f.Wires[i].From = nfc(f.Wires[i].From)
		f.Wires[i].To = nfc(f.Wires[i].To)
	}
}

func (f *File) validate() error {
	if f.Name == "" {
		return errors.New("level has no name")
	}
	for i, g := range f.Gates {
		if g.ID == "" {
			return errors.Errorf("gate %d: missing id", i)
		}
	}
	for i, w := range f.Wires {
		if w.From == "" || w.To == "" {
			return errors.Errorf("wire %d: missing pin reference", i)
		}
	}
	return nil
}

// Build creates a board from the level. Settings from the level take
// precedence over cfg.
//
// Wiring errors wrap logicboard.ErrInvalidWiring and duplicate ids wrap
// logicboard.ErrDuplicateItem.
func (f *File) Build(cfg lb.Config) (*lb.Board, error) {
	return f.build(cfg, nil)
}

// build creates the board. A non-nil score is shared by the level's
// scoreboards.
func (f *File) build(cfg lb.Config, score *lb.Score) (*lb.Board, error) {
	if f.Settings.StrictInputs {
		cfg.StrictInputs = true
	}
	b := lb.NewBoard(cfg)
	var belts []*lb.Conveyor
	for i := range f.Items {
		it, err := f.item(&f.Items[i], score)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		if err = b.Add(it); err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		if c, ok := it.(*lb.Conveyor); ok && !f.Items[i].Stopped {
			belts = append(belts, c)
		}
	}
	for i, gd := range f.Gates {
		k, err := lb.ParseKind(gd.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "gate %d", i)
		}
		g, err := lb.NewGate(k, gd.ID, gd.Inputs)
		if err != nil {
			return nil, errors.Wrapf(err, "gate %d", i)
		}
		g.SetPosition(lb.Point{X: gd.X, Y: gd.Y})
		if err = b.Add(g); err != nil {
			return nil, errors.Wrapf(err, "gate %d", i)
		}
	}
	for i, w := range f.Wires {
		if err := b.Connect(w.From, w.To); err != nil {
			return nil, errors.Wrapf(err, "wire %d", i)
		}
	}
	for _, c := range belts {
		c.Start()
	}
	return b, nil
}

func (f *File) item(d *Item, score *lb.Score) (lb.Item, error) {
	var it lb.Item
	switch d.Kind {
	case KindBeam:
		it = lb.NewBeam(d.ID)
	case KindConveyor:
		if d.Length <= 0 {
			return nil, errors.Errorf("conveyor %q: length must be positive", d.ID)
		}
		speed := d.Speed
		if speed == 0 {
			speed = lb.DefaultSpeed
		}
		it = lb.NewConveyor(d.ID, d.Length, speed)
	case KindProduct:
		p, err := product(d)
		if err != nil {
			return nil, err
		}
		it = p
	case KindScoreboard:
		good, bad := lb.DefaultGood, lb.DefaultBad
		if f.Settings.Good != nil {
			good = *f.Settings.Good
		}
		if f.Settings.Bad != nil {
			bad = *f.Settings.Bad
		}
		if score == nil {
			it = lb.NewScoreboard(d.ID, good, bad)
			break
		}
		score.Good, score.Bad = good, bad
		it = lb.NewScoreboardFor(d.ID, score)
	case KindSensor:
		s, err := lb.NewSensor(d.ID, d.Properties...)
		if err != nil {
			return nil, err
		}
		it = s
	case KindSparty:
		it = lb.NewSparty(d.ID)
	default:
		return nil, errors.Errorf("unknown item kind %q", d.Kind)
	}
	it.SetPosition(lb.Point{X: d.X, Y: d.Y})
	return it, nil
}

func product(d *Item) (*lb.Product, error) {
	shape, err := lb.ParseShape(d.Shape)
	if err != nil {
		return nil, errors.Wrapf(err, "product %q", d.ID)
	}
	color, err := lb.ParseColor(d.Color)
	if err != nil {
		return nil, errors.Wrapf(err, "product %q", d.ID)
	}
	content, err := lb.ParseContent(d.Content)
	if err != nil {
		return nil, errors.Wrapf(err, "product %q", d.ID)
	}
	return lb.NewProduct(d.ID, shape, color, content, d.Kick), nil
}
