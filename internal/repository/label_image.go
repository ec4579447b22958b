package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"labelproof/constants"
	"labelproof/gen/ent"
	entimage "labelproof/gen/ent/labelimage"
	"labelproof/internal/entity"
	"labelproof/internal/utils"
)

type LabelImageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LabelImage, error)
	ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entity.LabelImage, error)
	Create(ctx context.Context, applicationID uuid.UUID, role constants.ImageRole, contentType string, data []byte) (*entity.LabelImage, error)
}

type labelImageRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewLabelImageRepository(entc *ent.Client, logger *slog.Logger) LabelImageRepository {
	return &labelImageRepo{ent: entc, logger: logger}
}

func (r *labelImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.LabelImage, error) {
	row, err := r.ent.LabelImage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToLabelImage(row), nil
}

func (r *labelImageRepo) ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entity.LabelImage, error) {
	rows, err := r.ent.LabelImage.Query().
		Where(entimage.ApplicationID(applicationID)).
		Order(entimage.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list label images", "application_id", applicationID, "error", err)
		return nil, err
	}
	result := make([]*entity.LabelImage, len(rows))
	for i, row := range rows {
		result[i] = utils.ToLabelImage(row)
	}
	return result, nil
}

func (r *labelImageRepo) Create(ctx context.Context, applicationID uuid.UUID, role constants.ImageRole, contentType string, data []byte) (*entity.LabelImage, error) {
	row, err := r.ent.LabelImage.Create().
		SetApplicationID(applicationID).
		SetRole(entimage.Role(role)).
		SetContentType(constants.NormalizeContentType(contentType)).
		SetData(data).
		SetFileSize(len(data)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create label image", "application_id", applicationID, "role", role, "error", err)
		return nil, err
	}
	r.logger.Info("label image stored", "image_id", row.ID, "application_id", applicationID, "role", role, "bytes", len(data))
	return utils.ToLabelImage(row), nil
}
