package services

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/mholt/archives"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"building-service/internal/metrics"
	"building-service/internal/models"
)

const exportSheet = "Buildings"

// ExportHeader lists the XLSX columns in order.
var ExportHeader = []string{
	"ID",
	"Name",
	"Address",
	"Representative",
	"Phone",
	"CCCD",
	"CCCD Date",
	"Latitude",
	"Longitude",
}

var exportColumnWidths = []float64{16, 28, 30, 24, 14, 16, 12, 14, 14}

// ObjectStore receives exported snapshots.
type ObjectStore interface {
	Bucket() string
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}

// ExportService renders the directory for download and for archival.
type ExportService struct {
	directory *BuildingService
	store     ObjectStore
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService creates an ExportService. A nil store disables snapshots.
func NewExportService(directory *BuildingService, store ObjectStore, m *metrics.Metrics, logger *zap.Logger) *ExportService {
	return &ExportService{
		directory: directory,
		store:     store,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// SnapshotsEnabled reports whether an object store is configured.
func (s *ExportService) SnapshotsEnabled() bool { return s.store != nil }

// ExportXLSX renders the buildings matching search as an XLSX workbook.
func (s *ExportService) ExportXLSX(search string) (data []byte, rows int, err error) {
	defer func() { s.metrics.IncrementExports("xlsx", err) }()

	buildings := s.directory.Filtered(search)
	data, err = renderWorkbook(buildings)
	if err != nil {
		return nil, 0, err
	}
	return data, len(buildings), nil
}

// Snapshot uploads the whole directory as gzip compressed JSON.
func (s *ExportService) Snapshot(ctx context.Context) (info models.SnapshotInfo, err error) {
	if s.store == nil {
		return models.SnapshotInfo{}, ErrSnapshotsDisabled
	}
	defer func() { s.metrics.IncrementExports("snapshot", err) }()

	buildings := s.directory.All()
	payload, err := json.Marshal(buildings)
	if err != nil {
		return models.SnapshotInfo{}, errors.Wrap(err, "could not encode snapshot")
	}

	var buf bytes.Buffer
	w, err := archives.Gz{CompressionLevel: gzip.DefaultCompression}.OpenWriter(&buf)
	if err != nil {
		return models.SnapshotInfo{}, errors.Wrap(err, "could not open gzip writer")
	}
	if _, err = w.Write(payload); err != nil {
		w.Close()
		return models.SnapshotInfo{}, errors.Wrap(err, "could not compress snapshot")
	}
	if err = w.Close(); err != nil {
		return models.SnapshotInfo{}, errors.Wrap(err, "could not compress snapshot")
	}

	key := fmt.Sprintf("snapshots/buildings-%s-%s.json.gz", s.now().UTC().Format("20060102T150405Z"), uuid.NewString())
	size := int64(buf.Len())
	if err = s.store.Put(ctx, key, &buf, size, "application/gzip"); err != nil {
		return models.SnapshotInfo{}, err
	}

	s.logger.Info("Uploaded building snapshot",
		zap.String("bucket", s.store.Bucket()),
		zap.String("key", key),
		zap.Int64("size", size),
		zap.Int("records", len(buildings)),
	)
	return models.SnapshotInfo{
		Bucket:  s.store.Bucket(),
		Key:     key,
		Size:    size,
		Records: len(buildings),
	}, nil
}

func renderWorkbook(buildings []models.Building) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheet")
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "failed to delete default sheet")
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create header style")
	}

	for col, header := range ExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert coordinates")
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, errors.Wrapf(err, "failed to set header cell %s", cell)
		}
		if err := f.SetCellStyle(exportSheet, cell, cell, headerStyle); err != nil {
			return nil, errors.Wrap(err, "failed to set header style")
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert column number")
		}
		if err := f.SetColWidth(exportSheet, name, name, exportColumnWidths[col]); err != nil {
			return nil, errors.Wrap(err, "failed to set column width")
		}
	}

	for i, b := range buildings {
		// IDs and digit strings are written as text so leading zeros survive.
		row := []interface{}{
			b.ID.String(),
			b.Name,
			b.Address,
			b.Representative,
			b.Phone,
			b.CCCD,
			b.CCCDDate,
			coordinateCell(b.Lat),
			coordinateCell(b.Lng),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert coordinates")
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}
	return buf.Bytes(), nil
}

func coordinateCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
