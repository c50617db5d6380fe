package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bozorcha-admin/models"
	"bozorcha-admin/pkg/apperror"
	"bozorcha-admin/pkg/logger"

	"go.uber.org/zap"
)

// Client - remote katalog API mijozi
// Har bir endpoint {success, message, data} konvertida javob qaytaradi.
// success=false domain xato, tarmoq/parse muammosi transport xato sifatida
// apperror orqali ajratiladi.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient - yangi katalog mijozini yaratish
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// doJSON - so'rov yuborish va javob konvertini ochish
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body interface{}) (*models.APIResponse, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, apperror.NewTransportError("So'rov tayyorlashda xatolik", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, apperror.NewTransportError("So'rov yaratishda xatolik", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn("Katalog API ga ulanib bo'lmadi",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, apperror.NewTransportError("Server bilan bog'lanib bo'lmadi", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewTransportError("Javobni o'qishda xatolik", err)
	}

	var envelope models.APIResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		// Konvert ham o'qilmadi - transport xato
		return nil, apperror.NewTransportError(
			fmt.Sprintf("Server xatosi (%d)", resp.StatusCode), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := envelope.UserMessage()
		if message == "" {
			message = fmt.Sprintf("Server xatosi (%d)", resp.StatusCode)
		}
		return nil, apperror.NewDomainError(message)
	}

	if !envelope.Success {
		message := envelope.UserMessage()
		if message == "" {
			message = "Noma'lum xatolik yuz berdi"
		}
		return nil, apperror.NewDomainError(message)
	}

	return &envelope, nil
}

// decodeData - konvertdagi data maydonini kerakli turga ochish
func decodeData(envelope *models.APIResponse, out interface{}) error {
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return apperror.NewTransportError("Javob formatini o'qib bo'lmadi", err)
	}
	return nil
}

// ============================================
// USER
// ============================================

// FindUserByChatID - Telegram chat_id bo'yicha foydalanuvchini topish
func (c *Client) FindUserByChatID(ctx context.Context, chatID string) (*models.UserAuthData, error) {
	query := url.Values{}
	query.Set("chat_id", chatID)

	envelope, err := c.doJSON(ctx, http.MethodGet, "/api/user/find-by-chat-id", query, nil)
	if err != nil {
		return nil, err
	}

	var user models.UserAuthData
	if err := decodeData(envelope, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ============================================
// CATEGORY
// ============================================

// ListRootCategories - root kategoriyalar ro'yxati
func (c *Client) ListRootCategories(ctx context.Context) ([]models.Category, error) {
	envelope, err := c.doJSON(ctx, http.MethodGet, "/api/category", nil, nil)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := decodeData(envelope, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListChildCategories - kategoriyaning bolalari
func (c *Client) ListChildCategories(ctx context.Context, parentID string) ([]models.Category, error) {
	envelope, err := c.doJSON(ctx, http.MethodGet, "/api/category/"+parentID+"/children", nil, nil)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := decodeData(envelope, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// HasChildCategories - kategoriyaning bolasi bormi
// Natija hech qachon keshlanmaydi: tugunning kategoriya yoki mahsulot
// konteyneri ekani har safar serverdan qayta aniqlanadi
func (c *Client) HasChildCategories(ctx context.Context, id string) (bool, error) {
	envelope, err := c.doJSON(ctx, http.MethodGet, "/api/category/"+id+"/has-children", nil, nil)
	if err != nil {
		return false, err
	}

	var hasChildren bool
	if err := decodeData(envelope, &hasChildren); err != nil {
		return false, err
	}
	return hasChildren, nil
}

// CreateCategory - yangi kategoriya yaratish
func (c *Client) CreateCategory(ctx context.Context, req models.CategoryCreateRequest) (*models.Category, error) {
	envelope, err := c.doJSON(ctx, http.MethodPost, "/api/category", nil, req)
	if err != nil {
		return nil, err
	}

	var category models.Category
	if err := decodeData(envelope, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory - kategoriyani tahrirlash
func (c *Client) UpdateCategory(ctx context.Context, id string, req models.CategoryEditRequest) (*models.Category, error) {
	envelope, err := c.doJSON(ctx, http.MethodPut, "/api/category/edit/"+id, nil, req)
	if err != nil {
		return nil, err
	}

	var category models.Category
	if err := decodeData(envelope, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory - kategoriyani o'chirish
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/category/delete/"+id, nil, nil)
	return err
}

// ============================================
// PRODUCT
// ============================================

// ListProductsByCategory - kategoriya bo'yicha mahsulotlar
func (c *Client) ListProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	envelope, err := c.doJSON(ctx, http.MethodGet, "/api/product/products-by-category-id/"+categoryID, nil, nil)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := decodeData(envelope, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct - yangi mahsulot yaratish (variantlarsiz)
func (c *Client) CreateProduct(ctx context.Context, req models.ProductCreateRequest) (*models.Product, error) {
	envelope, err := c.doJSON(ctx, http.MethodPost, "/api/product", nil, req)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := decodeData(envelope, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct - mahsulotni yangilash
func (c *Client) UpdateProduct(ctx context.Context, id string, req models.ProductEditRequest) (*models.Product, error) {
	envelope, err := c.doJSON(ctx, http.MethodPut, "/api/product/update/"+id, nil, req)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := decodeData(envelope, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ChangeProductStatus - mahsulot statusini o'zgartirish
func (c *Client) ChangeProductStatus(ctx context.Context, id string, status models.Status) (*models.Product, error) {
	query := url.Values{}
	query.Set("status", string(status))

	envelope, err := c.doJSON(ctx, http.MethodPut, "/api/product/change-product-status/"+id, query, nil)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := decodeData(envelope, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct - mahsulotni o'chirish
// Backend soft delete qiladi, shuning uchun PUT ishlatiladi
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodPut, "/api/product/delete-product/"+id, nil, nil)
	return err
}

// ============================================
// PRODUCT VARIANT (product-type)
// ============================================

// AddProductVariant - mahsulotga variant qo'shish
func (c *Client) AddProductVariant(ctx context.Context, req models.AddVariantRequest) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/api/product/add-product-type", nil, req)
	return err
}

// UpdateProductVariant - variantni yangilash (id o'zi manzil, productId kerak emas)
func (c *Client) UpdateProductVariant(ctx context.Context, id string, req models.EditVariantRequest) error {
	_, err := c.doJSON(ctx, http.MethodPut, "/api/product/update-product-type/"+id, nil, req)
	return err
}

// DeleteProductVariant - variantni o'chirish
func (c *Client) DeleteProductVariant(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/product/product-type/"+id, nil, nil)
	return err
}
