package server

import (
	"context"
	"log/slog"

	labelspb "labelproof/gen/proto/labels/v1"
	"labelproof/internal/common"
	"labelproof/internal/export"
)

type ExportServer struct {
	labelspb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

// ExportReport returns the verification workbook as raw XLSX bytes, optionally
// narrowed to one workflow status.
func (s *ExportServer) ExportReport(ctx context.Context, req *labelspb.ExportReportRequest) (*labelspb.ExportReportResponse, error) {
	filter, err := parseStatusFilter(req.GetStatus())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportVerificationXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalErrorf("export report: %v", err)
	}
	return &labelspb.ExportReportResponse{Xlsx: xlsx}, nil
}
