package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"labelproof/constants"
	"labelproof/internal/common"
	"labelproof/internal/entity"
	"labelproof/internal/repository"
)

// Usecase persists manifest submissions through the repositories.
type Usecase struct {
	Apps   repository.ApplicationRepository
	Images repository.LabelImageRepository
	Logger *slog.Logger
}

func NewUsecase(apps repository.ApplicationRepository, images repository.LabelImageRepository, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{Apps: apps, Images: images, Logger: logger}
}

func (u *Usecase) IngestManifest(ctx context.Context, path string) ([]Result, Stats, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("abs path: %w", err)
	}
	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, Stats{}, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Applications) == 0 {
		return nil, Stats{}, fmt.Errorf("manifest %s declares no applications", filepath.Base(abs))
	}

	baseDir := filepath.Dir(abs)
	var results []Result
	var stats Stats

	for _, ma := range m.Applications {
		stats.Applications++
		res := Result{SerialNumber: ma.SerialNumber}

		app, imgCount, err := u.ingestOne(ctx, baseDir, ma)
		if err != nil {
			res.Err = err.Error()
			stats.Failed++
			results = append(results, res)
			u.Logger.Error("manifest application rejected",
				"serial_number", ma.SerialNumber, "error", err)
			continue
		}
		res.ApplicationID = app.ID
		res.Images = imgCount
		stats.Succeeded++
		stats.Images += uint32(imgCount)
		results = append(results, res)
	}

	u.Logger.Info("manifest ingested",
		"manifest", filepath.Base(abs),
		"applications", stats.Applications,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"images", stats.Images,
	)
	return results, stats, nil
}

func (u *Usecase) ingestOne(ctx context.Context, baseDir string, ma ManifestApplication) (*entity.Application, int, error) {
	if strings.TrimSpace(ma.SerialNumber) == "" {
		return nil, 0, fmt.Errorf("serial_number is required")
	}
	if strings.TrimSpace(ma.BrandName) == "" {
		return nil, 0, fmt.Errorf("brand_name is required")
	}
	if strings.TrimSpace(ma.ProducerName) == "" {
		return nil, 0, fmt.Errorf("producer_name is required")
	}
	bev, ok := constants.CanonicalizeBeverage(ma.BeverageType)
	if !ok {
		return nil, 0, fmt.Errorf("unknown beverage_type %q", ma.BeverageType)
	}
	if len(ma.Images) == 0 {
		return nil, 0, fmt.Errorf("at least one label image is required")
	}

	// resolve and sniff the images before creating any rows
	type pendingImage struct {
		role        constants.ImageRole
		contentType string
		data        []byte
	}
	pending := make([]pendingImage, 0, len(ma.Images))
	for _, mi := range ma.Images {
		role, ok := roleSet[strings.ToLower(strings.TrimSpace(mi.Role))]
		if !ok {
			return nil, 0, fmt.Errorf("image %q: unknown role %q", mi.Path, mi.Role)
		}
		imgPath := mi.Path
		if !filepath.IsAbs(imgPath) {
			imgPath = filepath.Join(baseDir, imgPath)
		}
		data, err := os.ReadFile(imgPath)
		if err != nil {
			return nil, 0, fmt.Errorf("image %q: %w", mi.Path, err)
		}
		ct := DetectContentType(imgPath, data)
		v := common.NewValidator().Field("content_type", ct, common.ImageContentType)
		if v.HasErrors() {
			return nil, 0, fmt.Errorf("image %q: %s", mi.Path, v.ErrorMessage())
		}
		pending = append(pending, pendingImage{role: role, contentType: ct, data: data})
	}

	app, err := u.Apps.Create(ctx, &entity.Application{
		SerialNumber:    strings.TrimSpace(ma.SerialNumber),
		BrandName:       strings.TrimSpace(ma.BrandName),
		FancifulName:    strings.TrimSpace(ma.FancifulName),
		ProducerName:    strings.TrimSpace(ma.ProducerName),
		ClassType:       strings.TrimSpace(ma.ClassType),
		BeverageType:    bev,
		AlcoholContent:  strings.TrimSpace(ma.AlcoholContent),
		NetContents:     strings.TrimSpace(ma.NetContents),
		GrapeVarietal:   strings.TrimSpace(ma.GrapeVarietal),
		Appellation:     strings.TrimSpace(ma.Appellation),
		Vintage:         strings.TrimSpace(ma.Vintage),
		CountryOfOrigin: strings.TrimSpace(ma.CountryOfOrigin),
		HealthWarning:   ma.HealthWarning,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("create application: %w", err)
	}

	for i, p := range pending {
		if _, err := u.Images.Create(ctx, app.ID, p.role, p.contentType, p.data); err != nil {
			return nil, i, fmt.Errorf("store %s image: %w", p.role, err)
		}
	}
	return app, len(pending), nil
}
