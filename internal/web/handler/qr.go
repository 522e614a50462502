package handler

import (
	"log/slog"
	"net/http"

	"github.com/skip2/go-qrcode"
)

// QRSize is the edge length of the QR code image in pixels
const QRSize = 256

// QRHandler serves a QR code pointing at the web page so the device that
// will be passed around can open it by scanning
type QRHandler struct {
	baseURL string
	logger  *slog.Logger
}

// NewQRHandler creates a new QRHandler. An empty baseURL encodes the host the
// request arrived on.
func NewQRHandler(baseURL string, logger *slog.Logger) *QRHandler {
	return &QRHandler{baseURL: baseURL, logger: logger}
}

// QR renders the page URL as a PNG
func (h *QRHandler) QR(w http.ResponseWriter, r *http.Request) {
	png, err := qrcode.Encode(h.target(r), qrcode.Medium, QRSize)
	if err != nil {
		h.logger.Error("could not encode qr code", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

func (h *QRHandler) target(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}
