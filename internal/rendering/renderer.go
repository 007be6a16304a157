package rendering

import (
	"bytes"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
)

// Component is the structural interface every gomponents.Node satisfies.
// The renderer depends on it rather than on the gomponents package so view
// code stays the only importer of the template library.
type Component interface {
	Render(w io.Writer) error
}

// Renderer renders components either as a full Echo response or to bytes
// for htmx fragment payloads.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render implements the echo.Renderer interface for use with
// c.Render(status, name, component). The name parameter is ignored; the
// component is passed as data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	component, ok := data.(Component)
	if !ok {
		return fmt.Errorf("unsupported component type: %T, must implement Render(io.Writer) error", data)
	}
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return component.Render(w)
}

// RenderBytes renders a component to a byte slice. Useful for htmx
// fragments assembled outside an Echo response cycle.
func (r *Renderer) RenderBytes(component Component) ([]byte, error) {
	var buf bytes.Buffer
	if err := component.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}
