package api

import (
	"github.com/samcharles93/binum/pkg/binum"
)

// RenderRequest asks the server to read one value out of a byte buffer and
// render it. Data is base64 on the wire; when omitted, the request runs
// against the buffer the server was started over.
type RenderRequest struct {
	Data    []byte         `json:"data,omitempty"`
	Offset  uint64         `json:"offset"`
	Type    binum.Type     `json:"type"`
	Display *binum.Display `json:"display,omitempty"`
}

// RenderResponse is the rendered value plus its decimal form for reference.
type RenderResponse struct {
	ID       string     `json:"id"`
	Offset   uint64     `json:"offset"`
	Type     binum.Type `json:"type"`
	Mode     binum.Mode `json:"mode"`
	Rendered string     `json:"rendered"`
	Decimal  string     `json:"decimal"`
}

// KindInfo describes one supported numeric kind.
type KindInfo struct {
	Kind   binum.Kind `json:"kind"`
	Size   uint64     `json:"size"`
	Bits   int        `json:"bits"`
	Signed bool       `json:"signed"`
	Float  bool       `json:"float"`
}

// BufferInfo describes the server-side buffer, when one is configured.
type BufferInfo struct {
	Name string `json:"name"`
	Size uint64 `json:"size"`
}

// APIError is the error envelope body.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}
