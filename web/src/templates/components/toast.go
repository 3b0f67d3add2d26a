package components

import (
	"github.com/nfrund/scalemyorg/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Toasts renders pending notifications. Nothing is rendered without any.
func Toasts(flash view.FlashData) g.Node {
	var items []g.Node
	for _, t := range flash.Toasts {
		items = append(items, toast(t.Kind, t.Title, t.Description))
	}
	for _, msg := range flash.Success {
		items = append(items, toast(view.ToastSuccess, msg, ""))
	}
	for _, msg := range flash.Error {
		items = append(items, toast(view.ToastError, msg, ""))
	}
	if len(items) == 0 {
		return nil
	}
	return h.Div(h.Class("toasts"), g.Attr("aria-live", "polite"), g.Group(items))
}

func toast(kind, title, description string) g.Node {
	class := "toast"
	role := "status"
	if kind == view.ToastError {
		class += " toast-error"
		role = "alert"
	}
	return h.Div(
		h.Class(class),
		g.Attr("role", role),
		h.P(h.Class("toast-title"), g.Text(title)),
		g.If(description != "", h.P(h.Class("toast-description"), g.Text(description))),
	)
}
