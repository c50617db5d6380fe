package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"bozorcha-admin/models"
	"bozorcha-admin/pkg/apperror"
)

// UploadFile - faylni serverga yuklash (multipart, "file" maydoni)
// Eski backend variantlari data sifatida faqat URL string qaytaradi,
// yangilari {url, name, size} obyektini - ikkalasi ham qabul qilinadi.
func (c *Client) UploadFile(ctx context.Context, filename string, r io.Reader) (*models.UploadedFile, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, apperror.NewTransportError("Fayl tayyorlashda xatolik", err)
	}
	size, err := io.Copy(part, r)
	if err != nil {
		return nil, apperror.NewTransportError("Faylni o'qishda xatolik", err)
	}
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/file/upload-file", body)
	if err != nil {
		return nil, apperror.NewTransportError("So'rov yaratishda xatolik", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperror.NewTransportError("Server bilan bog'lanib bo'lmadi", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewTransportError("Javobni o'qishda xatolik", err)
	}

	var envelope models.APIResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, apperror.NewTransportError(
			fmt.Sprintf("Server xatosi (%d)", resp.StatusCode), err)
	}

	if resp.StatusCode != http.StatusOK || !envelope.Success {
		message := envelope.UserMessage()
		if message == "" {
			message = fmt.Sprintf("Fayl yuklashda xatolik (%d)", resp.StatusCode)
		}
		return nil, apperror.NewDomainError(message)
	}

	uploaded := &models.UploadedFile{Name: filename, Size: size}

	// Avval obyekt sifatida, keyin oddiy URL string sifatida urinish
	if len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, uploaded); err != nil {
			var rawURL string
			if err := json.Unmarshal(envelope.Data, &rawURL); err != nil {
				return nil, apperror.NewTransportError("Javob formatini o'qib bo'lmadi", err)
			}
			uploaded.URL = rawURL
		}
	}

	return uploaded, nil
}
