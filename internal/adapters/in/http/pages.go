package http

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Browser-facing pages. The share page asks the customer's browser for its
// position and posts it back to the location endpoint; the thank-you page
// confirms the hand-off. Both are deliberately self-contained documents with
// no external assets so they render on any phone browser.

var sharePageTemplate = template.Must(template.New("share").Parse(`
<html><head><title>Share Location</title><meta name="viewport" content="width=device-width, initial-scale=1.0"></head><body>
    <h2>📦 Sharing Location for Order {{.OrderID}}...</h2><p id="status">⏳ Requesting your location...</p>
    <script>
    window.onload = function() {
        if (!navigator.geolocation) {
            document.getElementById('status').innerText = "❌ Geolocation not supported by this browser.";
            return;
        }
        navigator.geolocation.getCurrentPosition(function(pos) {
            fetch('/deliveries/{{.OrderID}}/location', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ lat: pos.coords.latitude, lon: pos.coords.longitude })
            }).then(res => {
                if (res.ok) { window.location.href = "/thankyou/{{.OrderID}}"; }
                else { document.getElementById('status').innerText = "❌ Error: Could not save location."; }
            }).catch(err => { document.getElementById('status').innerText = "❌ Error: " + err; });
        }, function(error) {
            document.getElementById('status').innerText = "❌ Permission denied or error: " + error.message;
        });
    }
    </script>
</body></html>
`))

var thankYouPageTemplate = template.Must(template.New("thankyou").Parse(`
<html><head><title>Location Received!</title><meta name="viewport" content="width=device-width, initial-scale=1.0"><style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; text-align: center; padding: 40px 20px; background-color: #f4f7f6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 30px; border-radius: 8px; box-shadow: 0 4px 8px rgba(0,0,0,0.1); }
    h2 { color: #28a745; } p { font-size: 1.1em; line-height: 1.6; }
</style></head><body><div class="container">
    <h2>✅ Location Received!</h2>
    <p>The delivery bot has your location for Order <b>{{.OrderID}}</b> and is on the way to deliver your goods.</p>
    <p>Thank you!</p>
</div></body></html>
`))

const orderNotFoundPage = `<html><body><h2>❌ Order not found</h2></body></html>`

type pageData struct {
	OrderID string
}

// SharePage handles GET /share/:order_id - serves the geolocation capture
// page linked from the registration SMS. Unknown order ids get a plain 404
// page so a mistyped link fails visibly in the browser.
func (s *Server) SharePage(ctx echo.Context) error {
	orderID := ctx.Param("order_id")

	query, err := queries.NewGetDeliveryQuery(orderID)
	if err != nil {
		return ctx.HTML(http.StatusNotFound, orderNotFoundPage)
	}

	if _, err = s.getDeliveryHandler.Handle(ctx.Request().Context(), query); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.HTML(http.StatusNotFound, orderNotFoundPage)
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve delivery",
		})
	}

	return renderPage(ctx, sharePageTemplate, orderID)
}

// ThankYouPage handles GET /thankyou/:order_id - the confirmation shown after
// the browser posted the position.
func (s *Server) ThankYouPage(ctx echo.Context) error {
	return renderPage(ctx, thankYouPageTemplate, ctx.Param("order_id"))
}

func renderPage(ctx echo.Context, tmpl *template.Template, orderID string) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, pageData{OrderID: orderID}); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to render page",
		})
	}

	return ctx.HTML(http.StatusOK, buf.String())
}
