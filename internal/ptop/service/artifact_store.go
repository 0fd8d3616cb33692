package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ArtifactStore 생성된 문서(xlsx)의 MinIO 보관소.
// 클라이언트가 없으면 보관 없이 동작하고 메타데이터만 돌려준다.
type ArtifactStore struct {
	client *minio.Client
	bucket string
}

func NewArtifactStore(client *minio.Client, bucket string) *ArtifactStore {
	return &ArtifactStore{client: client, bucket: bucket}
}

// Artifact 보관된 문서 메타데이터
type Artifact struct {
	FileName    string `json:"file_name"`
	ObjectName  string `json:"object_name,omitempty"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url,omitempty"` // 서명된 임시 URL
}

// Enabled 보관소 사용 가능 여부
func (s *ArtifactStore) Enabled() bool {
	return s.client != nil && s.bucket != ""
}

// Put xlsx 파일을 날짜 경로 아래 보관하고 24시간짜리 다운로드 URL 을 만든다.
func (s *ArtifactStore) Put(ctx context.Context, fileName string, f *excelize.File) (*Artifact, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	artifact := &Artifact{
		FileName: fileName,
		Size:     int64(buf.Len()),
	}
	if !s.Enabled() {
		return artifact, nil
	}

	objectName := fmt.Sprintf("documents/%s/%s_%s", time.Now().Format("2006/01/02"), uuid.New().String()[:8], fileName)
	_, err = s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(buf.Bytes()), int64(buf.Len()), minio.PutObjectOptions{
		ContentType: xlsxContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload artifact: %w", err)
	}
	artifact.ObjectName = objectName

	params := make(url.Values)
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	signed, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, 24*time.Hour, params)
	if err == nil {
		artifact.DownloadURL = signed.String()
	}
	return artifact, nil
}
