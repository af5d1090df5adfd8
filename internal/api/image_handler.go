package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/nmzz209741/products-inventory/internal/blob"
)

// allowedMimes is the set of claimed types the upload endpoint accepts.
// image/jpg is a common alias browsers still send for JPEG.
var allowedMimes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

type ImageHandler struct {
	blobs   blob.Store
	timeout time.Duration
}

func NewImageHandler(blobs blob.Store, timeout time.Duration) *ImageHandler {
	return &ImageHandler{
		blobs:   blobs,
		timeout: timeout,
	}
}

type uploadImageRequest struct {
	Image string `json:"image"`
	Mime  string `json:"mime"`
}

type uploadImageResponse struct {
	ImageURL string `json:"imageURL"`
}

func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if r.Method != http.MethodPost {
		ClientError(fmt.Sprintf("uploadImage only accepts POST method, you tried: %s", r.Method)).Write(w)
		return
	}

	var req uploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Image == "" || req.Mime == "" {
		ClientError("Incorrect body on request for image upload").Write(w)
		return
	}

	if _, ok := allowedMimes[req.Mime]; !ok {
		ClientError("Unsupported mime type").Write(w)
		return
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(req.Image, "base64,"))
	if err != nil {
		log.Printf("failed to decode image payload: %v", err)
		ServerError("Image upload failure").Write(w)
		return
	}

	// The sniffer only knows the canonical JPEG name, so fold the
	// image/jpg alias before comparing.
	claimed := req.Mime
	if claimed == "image/jpg" {
		claimed = "image/jpeg"
	}

	// Trusting the claimed type alone would let a disallowed format in
	// under a jpeg/png label. Sniff the magic numbers and require a match.
	detected := mimetype.Detect(data)
	if !detected.Is(claimed) {
		ClientError("Mime types do not match").Write(w)
		return
	}

	key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), detected.Extension())

	log.Printf("writing image %s to bucket", key)
	if err := h.blobs.Put(ctx, key, data, req.Mime); err != nil {
		log.Printf("failed to store image %s: %v", key, err)
		ServerError("Image upload failure").Write(w)
		return
	}

	Success(uploadImageResponse{ImageURL: h.blobs.PublicURL(key)}).Write(w)
}
