package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"labelproof/constants"
	"labelproof/gen/ent"
	entapp "labelproof/gen/ent/application"
	"labelproof/internal/entity"
	"labelproof/internal/utils"
)

type ApplicationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	List(ctx context.Context, status *constants.ApplicationStatus) ([]*entity.Application, error)
	ListIDsByStatus(ctx context.Context, status constants.ApplicationStatus) ([]uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ApplicationStatus, notes string) error
	Create(ctx context.Context, app *entity.Application) (*entity.Application, error)
}

type applicationRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewApplicationRepository(entc *ent.Client, logger *slog.Logger) ApplicationRepository {
	return &applicationRepo{ent: entc, logger: logger}
}

func (r *applicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	row, err := r.ent.Application.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToApplication(row), nil
}

func (r *applicationRepo) List(ctx context.Context, status *constants.ApplicationStatus) ([]*entity.Application, error) {
	q := r.ent.Application.Query()
	if status != nil {
		q = q.Where(entapp.StatusEQ(entapp.Status(*status)))
	}
	rows, err := q.Order(entapp.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list applications", "error", err)
		return nil, err
	}
	result := make([]*entity.Application, len(rows))
	for i, row := range rows {
		result[i] = utils.ToApplication(row)
	}
	return result, nil
}

func (r *applicationRepo) ListIDsByStatus(ctx context.Context, status constants.ApplicationStatus) ([]uuid.UUID, error) {
	ids, err := r.ent.Application.Query().
		Where(entapp.StatusEQ(entapp.Status(status))).
		Order(entapp.ByCreatedAt()).
		IDs(ctx)
	if err != nil {
		r.logger.Error("failed to list application ids", "status", status, "error", err)
		return nil, err
	}
	return ids, nil
}

// UpdateStatus writes the workflow status and review notes. Business fields
// stay untouched; verification never rewrites what the applicant declared.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ApplicationStatus, notes string) error {
	upd := r.ent.Application.UpdateOneID(id).
		SetStatus(entapp.Status(status))
	if notes != "" {
		upd = upd.SetReviewNotes(notes)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.logger.Error("failed to update application status", "application_id", id, "status", status, "error", err)
		return err
	}
	r.logger.Info("application status updated", "application_id", id, "status", status)
	return nil
}

func (r *applicationRepo) Create(ctx context.Context, app *entity.Application) (*entity.Application, error) {
	builder := r.ent.Application.Create().
		SetSerialNumber(app.SerialNumber).
		SetBrandName(app.BrandName).
		SetProducerName(app.ProducerName).
		SetBeverageType(entapp.BeverageType(app.BeverageType))
	if app.FancifulName != "" {
		builder = builder.SetFancifulName(app.FancifulName)
	}
	if app.ClassType != "" {
		builder = builder.SetClassType(app.ClassType)
	}
	if app.AlcoholContent != "" {
		builder = builder.SetAlcoholContent(app.AlcoholContent)
	}
	if app.NetContents != "" {
		builder = builder.SetNetContents(app.NetContents)
	}
	if app.GrapeVarietal != "" {
		builder = builder.SetGrapeVarietal(app.GrapeVarietal)
	}
	if app.Appellation != "" {
		builder = builder.SetAppellation(app.Appellation)
	}
	if app.Vintage != "" {
		builder = builder.SetVintage(app.Vintage)
	}
	if app.CountryOfOrigin != "" {
		builder = builder.SetCountryOfOrigin(app.CountryOfOrigin)
	}
	if app.HealthWarning != "" {
		builder = builder.SetHealthWarning(app.HealthWarning)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create application", "serial_number", app.SerialNumber, "error", err)
		return nil, err
	}
	return utils.ToApplication(row), nil
}
