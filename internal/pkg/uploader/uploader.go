package uploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/config"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	circuit "github.com/rubyist/circuitbreaker"
)

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Uploader offloads file assets to the cloud storage service. Only the HTTP
// boundary lives here; storage itself is external.
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

type uploader struct {
	client *circuit.HTTPClient
	cfg    *config.StorageConfig
	log    log.Logger
}

func New(client *circuit.HTTPClient, cfg *config.StorageConfig, log log.Logger) Uploader {
	return &uploader{
		client: client,
		cfg:    cfg,
		log:    log,
	}
}

func (u *uploader) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return UploadResult{}, errors.BadRequest("error open uploaded file")
	}
	defer src.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return UploadResult{}, errors.InternalServerError("error build upload request")
	}
	if _, err := io.Copy(part, src); err != nil {
		return UploadResult{}, errors.InternalServerError("error read uploaded file")
	}

	publicID := fmt.Sprintf("%s/%s", folder, uuid.NewString())
	writer.WriteField("folder", folder)
	writer.WriteField("public_id", publicID)
	if err := writer.Close(); err != nil {
		return UploadResult{}, errors.InternalServerError("error build upload request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.cfg.BaseURL+"/v1/files", body)
	if err != nil {
		return UploadResult{}, errors.InternalServerError("error build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+u.cfg.APIKey)

	resp, err := u.client.Do(req)
	if err != nil {
		return UploadResult{}, errors.InternalServerError("error upload file to storage")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		u.log.Error(ctx, "storage service rejected upload", resp.StatusCode)
		return UploadResult{}, errors.InternalServerError("error upload file to storage")
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return UploadResult{}, errors.InternalServerError("error parse storage response")
	}

	return result, nil
}

func (u *uploader) Delete(ctx context.Context, publicID string) error {
	url := fmt.Sprintf("%s/v1/files/%s", u.cfg.BaseURL, publicID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return errors.InternalServerError("error build delete request")
	}
	req.Header.Set("Authorization", "Bearer "+u.cfg.APIKey)

	resp, err := u.client.Do(req)
	if err != nil {
		return errors.InternalServerError("error delete file from storage")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		u.log.Error(ctx, "storage service rejected delete", resp.StatusCode)
		return errors.InternalServerError("error delete file from storage")
	}

	return nil
}
