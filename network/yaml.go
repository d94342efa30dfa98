// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the YAML shape of a Network.
type document struct {
	Start  string   `yaml:"start,omitempty"`
	Valves []Record `yaml:"valves"`
}

// DecodeYAML reads a single YAML document and builds a Network from it.
// A missing start key selects DefaultStart. Unknown keys are rejected.
//
// Errors: ErrEmptyNetwork for an empty stream, ErrBadRecord for YAML that
// does not decode, plus everything NewNetwork returns.
func DecodeYAML(r io.Reader) (*Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", methodDecodeYAML, ErrEmptyNetwork)
		}
		return nil, fmt.Errorf("%s: %w: %w", methodDecodeYAML, ErrBadRecord, err)
	}
	if doc.Start == "" {
		doc.Start = DefaultStart
	}

	return NewNetwork(doc.Valves, doc.Start)
}

// EncodeYAML writes n in the format DecodeYAML reads.
func EncodeYAML(w io.Writer, n *Network) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := document{Start: n.StartName(), Valves: n.Records()}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%s: %w", methodEncodeYAML, err)
	}

	return enc.Close()
}
