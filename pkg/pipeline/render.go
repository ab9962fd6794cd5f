package pipeline

import (
	"bytes"
	"context"
	"fmt"

	perrors "github.com/matzehuels/paulitower/pkg/errors"
	pio "github.com/matzehuels/paulitower/pkg/io"
	"github.com/matzehuels/paulitower/pkg/pauligraph"
	"github.com/matzehuels/paulitower/pkg/render/nodelink"
)

// Render writes pg in the given format. With frame set, DOT and SVG output
// gain a note listing the frame rows; JSON always carries the frame.
func Render(ctx context.Context, pg *pauligraph.Graph, format string, frame bool) ([]byte, error) {
	dotOpts := pauligraph.DOTOptions{Frame: frame}
	switch format {
	case FormatDOT:
		return []byte(pg.DOT(dotOpts)), nil
	case FormatJSON:
		var buf bytes.Buffer
		if err := pio.WriteGraphJSON(pg, &buf); err != nil {
			return nil, fmt.Errorf("render json: %w", err)
		}
		return buf.Bytes(), nil
	case FormatSVG:
		svg, err := nodelink.RenderSVG(ctx, pg.DOT(dotOpts))
		if err != nil {
			return nil, fmt.Errorf("render svg: %w", err)
		}
		return svg, nil
	default:
		return nil, perrors.ValidateFormat(format, GraphFormats...)
	}
}
