package product

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/logging"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct{ mock.Mock }

func (m *mockService) ListProducts(ctx context.Context, categories string) ([]*Product, error) {
	args := m.Called(ctx, categories)
	p, _ := args.Get(0).([]*Product)
	return p, args.Error(1)
}

func (m *mockService) GetProduct(ctx context.Context, id string) (*Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*Product)
	return p, args.Error(1)
}

func (m *mockService) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockService) FeaturedProducts(ctx context.Context, count string) ([]*Product, error) {
	args := m.Called(ctx, count)
	p, _ := args.Get(0).([]*Product)
	return p, args.Error(1)
}

func (m *mockService) CreateProduct(ctx context.Context, req ProductRequest, img *Image, baseURL string) (*Product, error) {
	args := m.Called(ctx, req, img, baseURL)
	p, _ := args.Get(0).(*Product)
	return p, args.Error(1)
}

func (m *mockService) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*Product)
	return p, args.Error(1)
}

func (m *mockService) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) UpdateGallery(ctx context.Context, id string, imgs []*Image, baseURL string) (*Product, error) {
	args := m.Called(ctx, id, imgs, baseURL)
	p, _ := args.Get(0).(*Product)
	return p, args.Error(1)
}

func newTestRouter(svc Service) http.Handler {
	r := chi.NewRouter()
	NewHandler(svc, logging.NewWithWriter("test", io.Discard)).RegisterRoutes(r)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+fileName+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestCreateProductHandler(t *testing.T) {
	svc := &mockService{}
	catID := uuid.NewString()
	svc.On("CreateProduct", mock.Anything,
		mock.MatchedBy(func(req ProductRequest) bool {
			return req.Name == "Paracetamol" && req.Category == catID &&
				req.Price.Equal(decimal.RequireFromString("10.50")) && req.CountInStock == 12 && req.IsFeatured
		}),
		mock.MatchedBy(func(img *Image) bool {
			return img != nil && img.Filename == "box.png" && img.ContentType == "image/png"
		}),
		"http://shop.test/public/uploads/",
	).Return(&Product{ID: uuid.New(), Name: "Paracetamol"}, nil)

	body, ct := multipartBody(t, map[string]string{
		"name": "Paracetamol", "category": catID, "price": "10.50",
		"countInStock": "12", "isFeatured": "true",
	}, "image", "box.png", "image/png")
	req := httptest.NewRequest(http.MethodPost, "http://shop.test/products", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestCreateProductHandlerBadNumber(t *testing.T) {
	svc := &mockService{}
	body, ct := multipartBody(t, map[string]string{"name": "x", "price": "ten"}, "", "", "")
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProductHandlerNotMultipart(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(&mockService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateGalleryHandler(t *testing.T) {
	svc := &mockService{}
	id := uuid.NewString()
	svc.On("UpdateGallery", mock.Anything, id,
		mock.MatchedBy(func(imgs []*Image) bool { return len(imgs) == 1 && imgs[0].ContentType == "image/jpeg" }),
		"https://shop.test/public/uploads/",
	).Return(&Product{Images: []string{"https://shop.test/public/uploads/a.jpeg"}}, nil)

	body, ct := multipartBody(t, nil, "images", "a.jpg", "image/jpeg")
	req := httptest.NewRequest(http.MethodPut, "http://shop.test/products/gallery-images/"+id, body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestProductCountHandler(t *testing.T) {
	svc := &mockService{}
	svc.On("CountProducts", mock.Anything).Return(int64(9), nil)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/get/count", nil))

	assert.JSONEq(t, `{"productCount":9}`, rec.Body.String())
}

func TestFeaturedProductsHandler(t *testing.T) {
	svc := &mockService{}
	svc.On("FeaturedProducts", mock.Anything, "2").Return([]*Product{{Name: "a"}, {Name: "b"}}, nil)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/get/featured/2", nil))

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 2)
}

func TestDeleteProductHandlerNotFound(t *testing.T) {
	svc := &mockService{}
	id := uuid.NewString()
	svc.On("DeleteProduct", mock.Anything, id).Return(apperr.NotFound("product %s not found", id))

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/"+id, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
