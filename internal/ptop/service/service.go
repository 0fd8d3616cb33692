package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"

	"github.com/doohosteel/ptop/internal/config"
	"github.com/doohosteel/ptop/internal/ptop/engine"
	"github.com/doohosteel/ptop/internal/ptop/repository"
)

// Services 서비스 집합
type Services struct {
	Catalog   *CatalogService
	Model     *ModelService
	Material  *MaterialService
	BOM       *BOMService
	Quotation *QuotationService
	Report    *ReportService
	Purchase  *PurchaseService
}

// NewServices 서비스 집합 생성
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	// MinIO 클라이언트 초기화 (엔드포인트 미설정 시 문서 보관 없이 동작)
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			minioClient = nil
		}
	}
	artifacts := NewArtifactStore(minioClient, cfg.MinIO.Bucket)

	eng := engine.New(engine.Keywords{
		Pipe:       cfg.Engine.PipeKeywords,
		Canopy:     cfg.Engine.CanopyKeywords,
		Galvanized: cfg.Engine.GalvanizedKeywords,
		Stainless:  cfg.Engine.StainlessKeywords,
	})

	catalogSvc := NewCatalogService(repos, rdb, cfg.Engine.CatalogCacheTTL)

	return &Services{
		Catalog:   catalogSvc,
		Model:     NewModelService(repos.Model, repos.BOM),
		Material:  NewMaterialService(repos.MainMaterial, repos.SubMaterial, repos.Inventory),
		BOM:       NewBOMService(repos.Model, repos.BOM, catalogSvc),
		Quotation: NewQuotationService(eng, catalogSvc, artifacts),
		Report:    NewReportService(eng, catalogSvc),
		Purchase:  NewPurchaseService(eng, catalogSvc, artifacts),
	}
}
