// Binary (de)serialization of topologies and containers.
//
// Each CSR section is written as: one word holding the length of the node
// id type tag, the tag bytes, the node and edge counts, the offset array,
// and the packed {target, value} records. A directed graph stores node
// values, the outgoing CSR, then the incoming CSR; an undirected graph
// stores node values and its single CSR. Arrays are written in native
// layout; a reader with a different node id type fails with
// InvalidIDTypeError carrying both tags.
package graph

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"unsafe"
)

// idTypeName returns the canonical tag identifying NI. It is compared
// verbatim on deserialization.
func idTypeName[NI ID]() string {
	return reflect.TypeOf((*NI)(nil)).Elem().String()
}

// asBytes exposes the backing memory of a slice as bytes without copying.
func asBytes[T any](s []T) []byte {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(s) == 0 || size == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*size)
}

func writeWord(w io.Writer, v uint64) error {
	word := []uint64{v}
	_, err := w.Write(asBytes(word))

	return err
}

func readWord(r io.Reader) (uint64, error) {
	word := make([]uint64, 1)
	if _, err := io.ReadFull(r, asBytes(word)); err != nil {
		return 0, err
	}

	return word[0], nil
}

// Serialize writes the topology to w.
func (c *Csr[NI, EV]) Serialize(w io.Writer) error {
	tag := idTypeName[NI]()
	if err := writeWord(w, uint64(len(tag))); err != nil {
		return fmt.Errorf("graph: serialize csr: %w", err)
	}
	if _, err := io.WriteString(w, tag); err != nil {
		return fmt.Errorf("graph: serialize csr: %w", err)
	}

	meta := []NI{c.NodeCount(), c.EdgeCount()}
	if _, err := w.Write(asBytes(meta)); err != nil {
		return fmt.Errorf("graph: serialize csr: %w", err)
	}

	if _, err := w.Write(asBytes(c.offsets)); err != nil {
		return fmt.Errorf("graph: serialize csr: %w", err)
	}
	if err := writeRecords(w, c.targets); err != nil {
		return fmt.Errorf("graph: serialize csr: %w", err)
	}

	return nil
}

// DeserializeCsr reads a topology previously written by Serialize. It fails
// with InvalidIDTypeError when the stored tag does not match NI.
func DeserializeCsr[NI ID, EV any](r io.Reader) (*Csr[NI, EV], error) {
	tagLen, err := readWord(r)
	if err != nil {
		return nil, fmt.Errorf("graph: deserialize csr: %w", err)
	}
	tag := make([]byte, tagLen)
	if _, err = io.ReadFull(r, tag); err != nil {
		return nil, fmt.Errorf("graph: deserialize csr: %w", err)
	}
	if expected := idTypeName[NI](); string(tag) != expected {
		return nil, &InvalidIDTypeError{Expected: expected, Actual: string(tag)}
	}

	meta := make([]NI, 2)
	if _, err = io.ReadFull(r, asBytes(meta)); err != nil {
		return nil, fmt.Errorf("graph: deserialize csr: %w", err)
	}
	nodeCount, edgeCount := int(meta[0]), int(meta[1])

	offsets := make([]NI, nodeCount+1)
	if _, err = io.ReadFull(r, asBytes(offsets)); err != nil {
		return nil, fmt.Errorf("graph: deserialize csr: %w", err)
	}

	targets := make([]Target[NI, EV], edgeCount)
	if err = readRecords(r, targets); err != nil {
		return nil, fmt.Errorf("graph: deserialize csr: %w", err)
	}

	return NewCsr(offsets, targets), nil
}

// writeRecords writes {target, value} records in packed order. With a unit
// value the record is byte-compatible with the id and the slice is written
// in one shot.
func writeRecords[NI ID, EV any](w io.Writer, targets []Target[NI, EV]) error {
	if targetIsPlain[NI, EV]() {
		_, err := w.Write(asBytes(targets))
		return err
	}

	bw := bufio.NewWriter(w)
	for i := range targets {
		t := []NI{targets[i].Target}
		if _, err := bw.Write(asBytes(t)); err != nil {
			return err
		}
		v := []EV{targets[i].Value}
		if _, err := bw.Write(asBytes(v)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func readRecords[NI ID, EV any](r io.Reader, targets []Target[NI, EV]) error {
	if targetIsPlain[NI, EV]() {
		_, err := io.ReadFull(r, asBytes(targets))
		return err
	}

	t := make([]NI, 1)
	v := make([]EV, 1)
	for i := range targets {
		if _, err := io.ReadFull(r, asBytes(t)); err != nil {
			return err
		}
		if _, err := io.ReadFull(r, asBytes(v)); err != nil {
			return err
		}
		targets[i] = Target[NI, EV]{Target: t[0], Value: v[0]}
	}

	return nil
}

func writeNodeValues[NV any](w io.Writer, values []NV) error {
	if err := writeWord(w, uint64(len(values))); err != nil {
		return err
	}
	if _, err := w.Write(asBytes(values)); err != nil {
		return err
	}

	return nil
}

func readNodeValues[NV any](r io.Reader) ([]NV, error) {
	count, err := readWord(r)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	values := make([]NV, count)
	if _, err = io.ReadFull(r, asBytes(values)); err != nil {
		return nil, err
	}

	return values, nil
}

// Serialize writes node values, the outgoing CSR, then the incoming CSR.
func (g *DirectedGraph[NI, NV, EV]) Serialize(w io.Writer) error {
	if err := writeNodeValues(w, g.nodeValues); err != nil {
		return fmt.Errorf("graph: serialize directed graph: %w", err)
	}
	if err := g.out.Serialize(w); err != nil {
		return err
	}

	return g.in.Serialize(w)
}

// DeserializeDirected reads a directed container previously written by
// Serialize.
func DeserializeDirected[NI ID, NV, EV any](r io.Reader) (*DirectedGraph[NI, NV, EV], error) {
	values, err := readNodeValues[NV](r)
	if err != nil {
		return nil, fmt.Errorf("graph: deserialize directed graph: %w", err)
	}
	out, err := DeserializeCsr[NI, EV](r)
	if err != nil {
		return nil, err
	}
	in, err := DeserializeCsr[NI, EV](r)
	if err != nil {
		return nil, err
	}

	return NewDirectedGraph(values, out, in), nil
}

// Serialize writes node values followed by the single CSR.
func (g *UndirectedGraph[NI, NV, EV]) Serialize(w io.Writer) error {
	if err := writeNodeValues(w, g.nodeValues); err != nil {
		return fmt.Errorf("graph: serialize undirected graph: %w", err)
	}

	return g.csr.Serialize(w)
}

// DeserializeUndirected reads an undirected container previously written by
// Serialize.
func DeserializeUndirected[NI ID, NV, EV any](r io.Reader) (*UndirectedGraph[NI, NV, EV], error) {
	values, err := readNodeValues[NV](r)
	if err != nil {
		return nil, fmt.Errorf("graph: deserialize undirected graph: %w", err)
	}
	csr, err := DeserializeCsr[NI, EV](r)
	if err != nil {
		return nil, err
	}

	return NewUndirectedGraph[NI, NV, EV](values, csr), nil
}
