package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"recruithub/config"
	"recruithub/internal/core"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/telemetry"
	"strings"

	"github.com/google/wire"
	"go.opentelemetry.io/otel/attribute"
)

var ProviderSet = wire.NewSet(NewClient)

// UploadResult 物件儲存服務回傳的檔案位置
type UploadResult struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// 應徵文件允許的副檔名
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
}

type Client struct {
	httpClient *http.Client
	trace      *telemetry.Trace
	config     *config.Configuration
}

func NewClient(trace *telemetry.Trace, httpClient *http.Client, config *config.Configuration) *Client {
	return &Client{
		httpClient: httpClient,
		trace:      trace,
		config:     config,
	}
}

// Upload 以 multipart 上傳單一應徵文件。
// 失敗分類：
//   - 檔案格式/大小不符：BadRequestFile
//   - 建請/讀檔失敗：InternalServer
//   - 對外請求/非 2xx：StorageError
//   - 回應解析失敗：ExternalResponseFormatError
func (client *Client) Upload(ctx context.Context, fieldName string, fileHeader *multipart.FileHeader) (*UploadResult, error) {
	url := strings.TrimRight(client.config.Storage.BaseURL, "/") + "/v1/files"
	ctx, span, end := client.trace.WithSpan(ctx, "storage.upload")
	defer end(nil)

	span.SetAttributes(attribute.String("http.url", url))
	client.trace.ApplyTraceAttributes(span, core.TraceStorageMeta{
		Field: fieldName,
		Bytes: fileHeader.Size,
		Op:    "upload",
	})

	// --- 基本檢核 ---
	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, allowed := allowedExtensions[extension]
	if !allowed {
		err := fmt.Errorf("unsupported file type: %s", extension)
		end(err)
		return nil, cErr.BadRequestFile(err.Error())
	}
	maxBytes := client.config.Storage.MaxFileSizeMB * 1024 * 1024
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		err := fmt.Errorf("file %q exceeds %d MB", fileHeader.Filename, client.config.Storage.MaxFileSizeMB)
		end(err)
		return nil, cErr.BadRequestFile(err.Error())
	}

	// 1) multipart 組裝
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	f, err := fileHeader.Open()
	if err != nil {
		end(err)
		return nil, cErr.InternalServer("open upload file failed")
	}
	defer f.Close()

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileHeader.Filename))
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	if err != nil {
		end(err)
		return nil, cErr.InternalServer("create file part failed")
	}
	if _, err := io.Copy(part, f); err != nil {
		end(err)
		return nil, cErr.InternalServer("copy file failed")
	}

	if err := writer.WriteField("folder", client.config.Storage.UploadFolder); err != nil {
		end(err)
		return nil, cErr.InternalServer("write folder field failed")
	}
	if err := writer.WriteField("field", fieldName); err != nil {
		end(err)
		return nil, cErr.InternalServer("write field name failed")
	}
	if err := writer.Close(); err != nil {
		end(err)
		return nil, cErr.InternalServer("close multipart writer failed")
	}

	// 2) 建請
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		end(err)
		return nil, cErr.InternalServer("create http request failed")
	}
	httpReq.Header.Set("Authorization", "Bearer "+client.config.Storage.APIKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	// 3) 請求
	resp, err := client.httpClient.Do(httpReq)
	if err != nil {
		end(err)
		return nil, cErr.StorageError("storage upload request failed")
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	// 4) 狀態碼
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(resp.Body)
		end(fmt.Errorf("storage upload status %d", resp.StatusCode))
		return nil, cErr.StorageError("storage upload error: " + trimBody(b))
	}

	// 5) 解析
	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		end(err)
		return nil, cErr.ExternalResponseFormatError("decode storage response failed")
	}
	if result.PublicID == "" || result.URL == "" {
		err := fmt.Errorf("incomplete storage response")
		end(err)
		return nil, cErr.ExternalResponseFormatError(err.Error())
	}

	client.trace.ApplyTraceAttributes(span, core.TraceStorageMeta{
		Field:    fieldName,
		PublicID: result.PublicID,
		Bytes:    fileHeader.Size,
		Op:       "upload",
	})
	return &result, nil
}

// Delete 刪除已上傳的檔案；應徵寫入失敗時用來回收垃圾檔案
func (client *Client) Delete(ctx context.Context, publicID string) error {
	url := strings.TrimRight(client.config.Storage.BaseURL, "/") + "/v1/files/" + publicID
	ctx, span, end := client.trace.WithSpan(ctx, "storage.delete")
	defer end(nil)

	client.trace.ApplyTraceAttributes(span, core.TraceStorageMeta{
		PublicID: publicID,
		Op:       "delete",
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		end(err)
		return cErr.InternalServer("create http request failed")
	}
	httpReq.Header.Set("Authorization", "Bearer "+client.config.Storage.APIKey)

	resp, err := client.httpClient.Do(httpReq)
	if err != nil {
		end(err)
		return cErr.StorageError("storage delete request failed")
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	// 已不存在視為刪除成功
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(resp.Body)
		end(fmt.Errorf("storage delete status %d", resp.StatusCode))
		return cErr.StorageError("storage delete error: " + trimBody(b))
	}
	return nil
}

// trimBody 截斷過長的錯誤 body，避免污染 log
func trimBody(b []byte) string {
	const max = 512
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}
