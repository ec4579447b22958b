package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	labelspb "labelproof/gen/proto/labels/v1"
	"labelproof/internal/batch"
	"labelproof/internal/common"
)

type BatchService struct {
	labelspb.UnimplementedBatchServiceServer
	coord  *batch.Coordinator
	logger *slog.Logger
}

func NewBatchService(coord *batch.Coordinator, logger *slog.Logger) *BatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchService{coord: coord, logger: logger}
}

// SubmitBatch validates the id list and returns a batch id immediately; the
// run itself is asynchronous and polled through GetBatchStatus.
func (s *BatchService) SubmitBatch(ctx context.Context, req *labelspb.SubmitBatchRequest) (*labelspb.SubmitBatchResponse, error) {
	raw := req.GetApplicationIds()
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			return nil, common.InvalidArgumentErrorf("application id %q is not a UUID", r)
		}
		ids = append(ids, id)
	}

	batchID, err := s.coord.Submit(ctx, ids)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Error("batch submission failed", "error", err)
		return nil, common.InternalErrorf("submit batch: %v", err)
	}

	return &labelspb.SubmitBatchResponse{
		BatchId: batchID.String(),
		Total:   int32(len(ids)),
	}, nil
}

func (s *BatchService) GetBatchStatus(_ context.Context, req *labelspb.GetBatchStatusRequest) (*labelspb.GetBatchStatusResponse, error) {
	v := common.NewValidator().
		Field("batch_id", strings.TrimSpace(req.GetBatchId()), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	batchID, _ := uuid.Parse(strings.TrimSpace(req.GetBatchId()))

	snap, ok := s.coord.GetStatus(batchID)
	if !ok {
		return nil, common.NotFoundError(fmt.Sprintf("batch %s not found", batchID))
	}

	items := make([]*labelspb.BatchItem, 0, len(snap.Items))
	for _, item := range snap.Items {
		items = append(items, &labelspb.BatchItem{
			ApplicationId: item.ApplicationID.String(),
			Outcome:       string(item.Outcome),
			Disposition:   string(item.Disposition),
			Error:         item.Error,
		})
	}

	resp := &labelspb.GetBatchStatusResponse{
		BatchId:    snap.ID.String(),
		Status:     string(snap.Status),
		Total:      int32(snap.Total),
		Processed:  int32(snap.Processed),
		Successful: int32(snap.Successful),
		Failed:     int32(snap.Failed),
		StartedAt:  snap.StartedAt.UTC().Format(time.RFC3339),
		Items:      items,
	}
	if !snap.FinishedAt.IsZero() {
		resp.FinishedAt = snap.FinishedAt.UTC().Format(time.RFC3339)
	}
	return resp, nil
}
