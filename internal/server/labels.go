package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"labelproof/constants"
	labelspb "labelproof/gen/proto/labels/v1"
	"labelproof/internal/batch"
	"labelproof/internal/common"
	"labelproof/internal/repository"
	"labelproof/internal/utils"
)

type LabelsService struct {
	labelspb.UnimplementedLabelsServiceServer
	appRepo repository.ApplicationRepository
	proc    *batch.Processor
	logger  *slog.Logger
}

func NewLabelsService(appRepo repository.ApplicationRepository, proc *batch.Processor, logger *slog.Logger) *LabelsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LabelsService{appRepo: appRepo, proc: proc, logger: logger}
}

// VerifyApplication runs the full extraction and comparison pipeline for one
// application synchronously and returns the per-image, per-field outcome.
func (s *LabelsService) VerifyApplication(ctx context.Context, req *labelspb.VerifyApplicationRequest) (*labelspb.VerifyApplicationResponse, error) {
	v := common.NewValidator().
		Field("application_id", strings.TrimSpace(req.GetApplicationId()), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	id, _ := uuid.Parse(strings.TrimSpace(req.GetApplicationId()))

	ctx = common.WithRequestID(ctx, uuid.New().String())
	outcome, err := s.proc.ProcessApplication(ctx, id)
	if err != nil {
		s.logger.Error("verify application failed", "application_id", id, "error", err)
		return nil, common.InternalErrorf("verify application: %v", err)
	}

	images := make([]*labelspb.ImageVerification, 0, len(outcome.Images))
	for _, img := range outcome.Images {
		images = append(images, &labelspb.ImageVerification{
			ImageId:     img.ImageID.String(),
			Role:        string(img.Role),
			Fields:      utils.ToPBFieldResults(img.Fields),
			Disposition: string(img.Disposition),
			Confidence:  img.Confidence,
		})
	}
	return &labelspb.VerifyApplicationResponse{
		ApplicationId: outcome.ApplicationID.String(),
		SerialNumber:  outcome.SerialNumber,
		Disposition:   string(outcome.Disposition),
		Promoted:      outcome.Promoted,
		Images:        images,
	}, nil
}

func (s *LabelsService) ListApplications(ctx context.Context, req *labelspb.ListApplicationsRequest) (*labelspb.ListApplicationsResponse, error) {
	filter, err := parseStatusFilter(req.GetStatus())
	if err != nil {
		return nil, err
	}

	apps, err := s.appRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list applications", "error", err)
		return nil, common.InternalErrorf("list applications: %v", err)
	}

	out := make([]*labelspb.Application, 0, len(apps))
	for _, a := range apps {
		out = append(out, utils.ToPBApplication(a))
	}
	return &labelspb.ListApplicationsResponse{Applications: out}, nil
}

// parseStatusFilter maps an optional wire status string onto the enum; empty
// means no filter.
func parseStatusFilter(raw string) (*constants.ApplicationStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, st := range constants.ApplicationStatuses {
		if string(st) == raw {
			return &st, nil
		}
	}
	return nil, common.InvalidArgumentErrorf(
		"status must be one of %s", strings.Join(constants.StatusStrings(), ", "))
}
