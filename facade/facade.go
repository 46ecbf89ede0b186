// Package facade is the thin public entry point this module exposes:
// parse/write for full saves and for blueprint pairs, each driven by an
// options bag of progress and byte-snapshot callbacks (spec §6). Everything
// underneath — chunk framing, the property codec, object graph assembly —
// is an internal collaborator; facade only wires it together.
package facade

import (
	"github.com/Sleavely/satisfactory-file-parser/internal/chunk"
	"github.com/Sleavely/satisfactory-file-parser/internal/save"
)

// ParseOptions bundles the optional callbacks a caller may supply while
// parsing. Every field may be left nil.
type ParseOptions struct {
	// OnProgress is called with p in [0,1] at coarse decode milestones.
	OnProgress func(p float64, msg string)
	// OnDecompressedBody is called once after inflate, before parsing.
	OnDecompressedBody func([]byte)
	// OnHeader is called once with the uncompressed save/blueprint header.
	OnHeader func([]byte)
	// OnChunk is called once per decompressed chunk, in stream order.
	OnChunk func([]byte)
	// Warn receives non-fatal decode warnings (e.g. an unknown struct type
	// that fell through to the generic payload).
	Warn func(string)
	// Registry overrides the default chunk compression registry; nil uses
	// chunk.DefaultRegistry().
	Registry chunk.Registry
}

func (o ParseOptions) toDecodeOptions() save.DecodeOptions {
	return save.DecodeOptions{
		OnProgress:          o.OnProgress,
		OnDecompressedBody:  o.OnDecompressedBody,
		OnHeader:            o.OnHeader,
		OnDecompressedChunk: o.OnChunk,
		Warn:                o.Warn,
	}
}

func (o ParseOptions) registry() chunk.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return chunk.DefaultRegistry()
}

// WriteOptions bundles the optional callbacks a caller may supply while
// encoding.
type WriteOptions struct {
	// OnBinaryBeforeCompressing is called once during encode with the
	// uncompressed body, before any chunk compression.
	OnBinaryBeforeCompressing func([]byte)
	// OnHeader is called once with the uncompressed save/blueprint header.
	OnHeader func([]byte)
	// OnChunk is called once per emitted chunk, in emission order.
	OnChunk func([]byte)
	// Registry overrides the default chunk compression registry; nil uses
	// chunk.DefaultRegistry().
	Registry chunk.Registry
}

func (o WriteOptions) toEncodeOptions() save.EncodeOptions {
	return save.EncodeOptions{
		OnBinaryBeforeCompressing: o.OnBinaryBeforeCompressing,
		OnHeader:                  o.OnHeader,
		OnChunk:                   chunk.OnChunk(o.OnChunk),
	}
}

func (o WriteOptions) registry() chunk.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return chunk.DefaultRegistry()
}

// ChunkSummary mirrors chunk.Summary at the public boundary, so callers
// never need to import the internal chunk package.
type ChunkSummary = chunk.Summary

// ParseSave decodes name's raw bytes into a Save object graph.
func ParseSave(name string, raw []byte, opts ParseOptions) (save.Save, error) {
	return save.Decode(raw, opts.registry(), opts.toDecodeOptions())
}

// WriteSave re-encodes a Save back to bytes, returning the per-chunk
// summaries a caller streams to disk alongside them.
func WriteSave(s save.Save, opts WriteOptions) ([]byte, []ChunkSummary, error) {
	return save.Encode(s, opts.registry(), opts.toEncodeOptions())
}

// ParseBlueprint decodes a blueprint's main file and config file pair into
// a Blueprint object graph.
func ParseBlueprint(name string, mainBytes, configBytes []byte, opts ParseOptions) (save.Blueprint, error) {
	return save.DecodeBlueprint(mainBytes, configBytes, opts.registry(), opts.toDecodeOptions())
}

// WriteBlueprint re-encodes a Blueprint back to its main-file and
// config-file byte pair.
func WriteBlueprint(bp save.Blueprint, opts WriteOptions) ([]byte, []ChunkSummary, []byte, error) {
	return save.EncodeBlueprint(bp, opts.registry(), opts.toEncodeOptions())
}
