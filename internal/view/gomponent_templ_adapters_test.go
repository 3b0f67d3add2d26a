package view_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/nfrund/scalemyorg/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ctxKey struct{}

func TestAdapters(t *testing.T) {
	t.Run("gomponent inside templ", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, view.AdaptGomponentToTempl(h.Em(g.Text("x"))).Render(context.Background(), &buf))
		assert.Equal(t, "<em>x</em>", buf.String())
	})

	t.Run("templ inside gomponent keeps the context", func(t *testing.T) {
		component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, ctx.Value(ctxKey{}).(string))
			return err
		})
		ctx := context.WithValue(context.Background(), ctxKey{}, "from-request")

		var buf bytes.Buffer
		require.NoError(t, h.Div(view.AdaptTemplToGomponent(ctx, component)).Render(&buf))
		assert.Equal(t, "<div>from-request</div>", buf.String())
	})
}
