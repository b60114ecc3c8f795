// Package jarkup models the markup component tree consumed by the jarkup renderer.
//
// Components fall into two capability classes. BlockComponents flow vertically
// (paragraphs, lists, tables, ...) and InlineComponents flow with text (styled
// spans, icons, math). Both interfaces are sealed: only the constructors in this
// package satisfy them, so slot contents are checked by the compiler.
package jarkup

import "encoding/json"

// Component is any node of the output tree.
type Component interface {
	// Type returns the wire name of the component, e.g. "Paragraph".
	Type() string
	component()
}

// BlockComponent is a component that participates in vertical flow.
type BlockComponent interface {
	Component
	blockComponent()
}

// InlineComponent is a component that participates in text flow.
type InlineComponent interface {
	Component
	inlineComponent()
}

type envelope struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Props any    `json:"props,omitempty"`
	Slots any    `json:"slots,omitempty"`
}

func marshal(typ, id string, props, slots any) ([]byte, error) {
	return json.Marshal(envelope{Type: typ, ID: id, Props: props, Slots: slots})
}

// Bool returns a pointer to v, for the explicit boolean props of Text.
func Bool(v bool) *bool {
	return &v
}

// Inlines converts a slice of concrete inline components to the interface slice
// used by slots.
func Inlines[T InlineComponent](items ...T) []InlineComponent {
	out := make([]InlineComponent, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
