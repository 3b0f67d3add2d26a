package layouts

import (
	"strings"
	"testing"

	"github.com/nfrund/scalemyorg/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Dashboard - ScaleMyOrg.ai", CalculateTitle("Dashboard"))
	assert.Equal(t, "ScaleMyOrg.ai", CalculateTitle(""))
}

func TestBase(t *testing.T) {
	var b strings.Builder
	flash := view.FlashData{Toasts: []view.Toast{{Kind: view.ToastSuccess, Title: "Logged out", Description: "You've been successfully logged out."}}}
	require.NoError(t, Base("Home", flash, g.Text("body")).Render(&b))

	out := b.String()
	assert.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"))
	assert.Contains(t, out, "<title>Home - ScaleMyOrg.ai</title>")
	assert.Contains(t, out, `hx-boost="true"`)
	assert.Contains(t, out, "Logged out")
	assert.Contains(t, out, "You&#39;ve been successfully logged out.")
}

func TestBase_NoToasts(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Base("", view.FlashData{}, g.Text("body")).Render(&b))
	assert.NotContains(t, b.String(), "toasts")
}
