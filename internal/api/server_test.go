package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/binum/pkg/binum"
)

func newTestEcho(s *Server) *echo.Echo {
	e := echo.New()
	s.Register(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func renderBody(t *testing.T, req RenderRequest) string {
	t.Helper()
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return string(data)
}

func TestRenderWithInlineData(t *testing.T) {
	t.Parallel()
	e := newTestEcho(NewServer())

	display := binum.Display{
		Mode: binum.ModeHex,
		Hex:  binum.HexOptions{Uppercase: true, Prefix: true, Padded: true},
	}
	body := renderBody(t, RenderRequest{
		Data:    []byte{0x00, 0x00, 0x12, 0xAB, 0xFF, 0xFF, 0xFF, 0xFF},
		Offset:  0,
		Type:    binum.Type{Kind: binum.U32, Order: binum.Big},
		Display: &display,
	})

	rec := doJSON(t, e, http.MethodPost, "/v1/render", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp RenderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Rendered != "0x000012AB" {
		t.Errorf("rendered: got %q, want 0x000012AB", resp.Rendered)
	}
	if resp.Decimal != "4779" {
		t.Errorf("decimal: got %q, want 4779", resp.Decimal)
	}
	if !strings.HasPrefix(resp.ID, "read_") {
		t.Errorf("id: got %q, want read_ prefix", resp.ID)
	}
}

func TestRenderAgainstServerBuffer(t *testing.T) {
	t.Parallel()
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	e := newTestEcho(NewBufferServer("test.bin", buf))

	display := binum.Display{Mode: binum.ModeDecimal}
	body := renderBody(t, RenderRequest{
		Offset:  0,
		Type:    binum.Type{Kind: binum.I32, Order: binum.Big},
		Display: &display,
	})
	rec := doJSON(t, e, http.MethodPost, "/v1/render", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp RenderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Rendered != "-1" {
		t.Errorf("rendered: got %q, want -1", resp.Rendered)
	}

	infoRec := doJSON(t, e, http.MethodGet, "/v1/buffer", "")
	if infoRec.Code != http.StatusOK {
		t.Fatalf("buffer status: got %d", infoRec.Code)
	}
	var info BufferInfo
	if err := json.Unmarshal(infoRec.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode buffer info: %v", err)
	}
	if info.Name != "test.bin" || info.Size != 4 {
		t.Errorf("buffer info: got %+v", info)
	}
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()
	e := newTestEcho(NewServer())

	// No data anywhere.
	rec := doJSON(t, e, http.MethodPost, "/v1/render", `{"offset":0,"type":{"kind":"u8"}}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("no data: got %d, want 400", rec.Code)
	}

	// Read past the end of the supplied buffer.
	body := renderBody(t, RenderRequest{
		Data:   []byte{0x01},
		Offset: 0,
		Type:   binum.Type{Kind: binum.U64, Order: binum.Big},
	})
	rec = doJSON(t, e, http.MethodPost, "/v1/render", body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("short buffer: got %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "out_of_range") {
		t.Errorf("short buffer: missing out_of_range code: %s", rec.Body.String())
	}

	// Hex on a float is unsupported.
	display := binum.DefaultDisplay(binum.ModeHex)
	body = renderBody(t, RenderRequest{
		Data:    []byte{0x40, 0x49, 0x0F, 0xDB},
		Type:    binum.Type{Kind: binum.F32, Order: binum.Big},
		Display: &display,
	})
	rec = doJSON(t, e, http.MethodPost, "/v1/render", body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("float hex: got %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unsupported_display") {
		t.Errorf("float hex: missing unsupported_display code: %s", rec.Body.String())
	}

	// Garbage JSON.
	rec = doJSON(t, e, http.MethodPost, "/v1/render", `{`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad json: got %d, want 400", rec.Code)
	}
}

func TestKindsEndpoint(t *testing.T) {
	t.Parallel()
	e := newTestEcho(NewServer())

	rec := doJSON(t, e, http.MethodGet, "/v1/kinds", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var kinds []KindInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &kinds); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(kinds) != 12 {
		t.Fatalf("kinds: got %d, want 12", len(kinds))
	}
	if kinds[0].Kind != binum.U8 || kinds[0].Size != 1 {
		t.Errorf("first kind: got %+v", kinds[0])
	}
}

func TestBufferEndpointWithoutBuffer(t *testing.T) {
	t.Parallel()
	e := newTestEcho(NewServer())
	rec := doJSON(t, e, http.MethodGet, "/v1/buffer", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.Use(RateLimit(1, 1))
	NewServer().Register(e)

	first := doJSON(t, e, http.MethodGet, "/v1/kinds", "")
	if first.Code != http.StatusOK {
		t.Fatalf("first request: got %d", first.Code)
	}
	second := doJSON(t, e, http.MethodGet, "/v1/kinds", "")
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request: got %d, want 429", second.Code)
	}
}
