// Package api serves binum's read-and-render operations over HTTP.
package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/binum/pkg/binum"
)

// Server renders values out of request-supplied buffers, or out of a single
// server-side buffer when one was configured at startup.
type Server struct {
	bufName string
	buf     []byte
}

// NewServer returns a server with no server-side buffer; every request must
// carry its own data.
func NewServer() *Server {
	return &Server{}
}

// NewBufferServer returns a server that answers data-less requests against
// the given buffer. The buffer is borrowed and must stay valid for the
// server's lifetime.
func NewBufferServer(name string, buf []byte) *Server {
	return &Server{bufName: name, buf: buf}
}

// Register installs the API routes.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/render", s.handleRender)
	e.GET("/v1/kinds", s.handleKinds)
	e.GET("/v1/buffer", s.handleBuffer)
}

func (s *Server) handleRender(c *echo.Context) error {
	req, err := decodeJSON[RenderRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	buf := req.Data
	if len(buf) == 0 {
		buf = s.buf
	}
	if buf == nil {
		return writeBadRequest(c, "no data in request and no buffer on server")
	}

	display := binum.DefaultDisplay(binum.ModeHex)
	if req.Display != nil {
		display = *req.Display
	}

	val, err := req.Type.Read(binum.NewCursorAt(buf, req.Offset))
	if err != nil {
		if errors.Is(err, binum.ErrUnexpectedEnd) {
			return writeError(c, http.StatusBadRequest, "invalid_request_error", err.Error(), "out_of_range")
		}
		return writeBadRequest(c, err.Error())
	}

	rendered, err := display.Render(val)
	if err != nil {
		if errors.Is(err, binum.ErrUnsupportedDisplay) {
			return writeError(c, http.StatusBadRequest, "invalid_request_error", err.Error(), "unsupported_display")
		}
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "")
	}

	return c.JSON(http.StatusOK, RenderResponse{
		ID:       "read_" + uuid.NewString(),
		Offset:   req.Offset,
		Type:     req.Type,
		Mode:     display.Mode,
		Rendered: rendered,
		Decimal:  val.String(),
	})
}

func (s *Server) handleKinds(c *echo.Context) error {
	kinds := binum.Kinds()
	out := make([]KindInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, KindInfo{
			Kind:   k,
			Size:   k.Size(),
			Bits:   k.Bits(),
			Signed: k.Signed(),
			Float:  k.Float(),
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleBuffer(c *echo.Context) error {
	if s.buf == nil {
		return writeError(c, http.StatusNotFound, "not_found_error", "server has no buffer", "")
	}
	return c.JSON(http.StatusOK, BufferInfo{
		Name: s.bufName,
		Size: uint64(len(s.buf)),
	})
}
