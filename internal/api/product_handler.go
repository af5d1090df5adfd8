package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nmzz209741/products-inventory/internal/blob"
	"github.com/nmzz209741/products-inventory/internal/domain"
	"github.com/nmzz209741/products-inventory/internal/events"
	"github.com/nmzz209741/products-inventory/internal/store"
)

type ProductHandler struct {
	store   store.ItemStore
	blobs   blob.Store
	events  events.Publisher
	timeout time.Duration
}

func NewProductHandler(items store.ItemStore, blobs blob.Store, publisher events.Publisher, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		store:   items,
		blobs:   blobs,
		events:  publisher,
		timeout: timeout,
	}
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

type createProductResponse struct {
	NewProduct domain.Product `json:"newProduct"`
}

type getProductResponse struct {
	Product domain.Product `json:"product"`
}

type listProductsResponse struct {
	Products         []domain.Product `json:"products"`
	LastEvaluatedKey string           `json:"lastEvaluatedKey,omitempty"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if r.Method != http.MethodPost {
		ClientError(fmt.Sprintf("createProduct only accepts POST method, you tried: %s", r.Method)).Write(w)
		return
	}

	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ClientError("Unable to parse the request body").Write(w)
		return
	}

	product := domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if missing := product.MissingFields(); len(missing) > 0 {
		ClientError("Incomplete request parameters for: " + strings.Join(missing, ", ")).Write(w)
		return
	}

	product.ID = uuid.NewString()

	stored, err := h.store.Put(ctx, &product)
	if err != nil {
		log.Printf("failed to write product %s: %v", product.Name, err)
		ServerError("Error while creating a new product in the database").Write(w)
		return
	}

	h.publish(ctx, events.TypeProductCreated, stored.ID)
	Success(createProductResponse{NewProduct: *stored}).Write(w)
}

func (h *ProductHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if r.Method != http.MethodGet {
		ClientError(fmt.Sprintf("getProduct only accepts GET method, you tried: %s", r.Method)).Write(w)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		ClientError("Missing the ID from the path").Write(w)
		return
	}

	product, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			ClientError("ID not found in the database").Write(w)
			return
		}
		log.Printf("failed to get product %s: %v", id, err)
		ServerError("Internal Server Error").Write(w)
		return
	}

	Success(getProductResponse{Product: *product}).Write(w)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if r.Method != http.MethodGet {
		ClientError(fmt.Sprintf("getProducts only accepts GET method, you tried: %s", r.Method)).Write(w)
		return
	}

	page, errPage := strconv.Atoi(r.URL.Query().Get("page"))
	limit, errLimit := strconv.Atoi(r.URL.Query().Get("limit"))
	if errPage != nil || errLimit != nil || page <= 0 || limit <= 0 {
		ClientError("Missing the page and limit parameters from the query string").Write(w)
		return
	}

	// Resumption is cursor-based: the caller hands back the last page's
	// lastEvaluatedKey as startKey. The page number on its own cannot
	// reposition a scan.
	startKey := r.URL.Query().Get("startKey")

	products, nextKey, err := h.store.Scan(ctx, int64(limit), startKey)
	if err != nil {
		log.Printf("failed to scan products: %v", err)
		ServerError("Error fetching all data from the database").Write(w)
		return
	}

	Success(listProductsResponse{Products: products, LastEvaluatedKey: nextKey}).Write(w)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if r.Method != http.MethodDelete {
		ClientError(fmt.Sprintf("deleteProduct only accepts DELETE method, you tried: %s", r.Method)).Write(w)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		ClientError("Missing the ID from the path parameters").Write(w)
		return
	}

	product, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			ClientError("ID not found in the database").Write(w)
			return
		}
		log.Printf("failed to get product %s for deletion: %v", id, err)
		ServerError("Internal Server Error deleting the item").Write(w)
		return
	}

	// Remove the uploaded image first, and only when it lives in our own
	// bucket. An already-missing object is fine: that is what a retried
	// delete looks like.
	if h.blobs.Owns(product.ImageURL) {
		err := h.blobs.DeleteByURL(ctx, product.ImageURL)
		if err != nil && !errors.Is(err, blob.ErrObjectNotFound) {
			log.Printf("failed to delete image %s: %v", product.ImageURL, err)
			ServerError("Internal Server Error deleting the item").Write(w)
			return
		}
	}

	if err := h.store.Delete(ctx, id); err != nil {
		log.Printf("failed to delete product %s: %v", id, err)
		ServerError("Internal Server Error deleting the item").Write(w)
		return
	}

	h.publish(ctx, events.TypeProductDeleted, id)
	Success(MessageBody{Message: fmt.Sprintf("Item with ID:%s deleted successfully", id)}).Write(w)
}

func (h *ProductHandler) publish(ctx context.Context, eventType, productID string) {
	if h.events == nil {
		return
	}
	err := h.events.Publish(ctx, events.Event{
		Type:       eventType,
		ProductID:  productID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("failed to publish %s event for %s: %v", eventType, productID, err)
	}
}
